package lead

import (
	"time"

	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/pkg"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, l *models.Lead) error
	BuscarPorID(db *gorm.DB, id uint) (*models.Lead, error)
	ListarNovos(db *gorm.DB) ([]models.Lead, error)
	Historico(db *gorm.DB, p pkg.PaginationParams) (pkg.PaginatedResponse[models.Lead], error)
	MarcarContactado(db *gorm.DB, id, assessorID uint, quando time.Time) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, l *models.Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*models.Lead, error) {
	var l models.Lead
	if err := db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// ListarNovos é a piscina: melhores scores primeiro, mais recentes no empate.
func (r *repositoryImpl) ListarNovos(db *gorm.DB) ([]models.Lead, error) {
	var leads []models.Lead
	err := db.Where("status = ?", models.LeadNovo).
		Order("score DESC").Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

func (r *repositoryImpl) Historico(db *gorm.DB, p pkg.PaginationParams) (pkg.PaginatedResponse[models.Lead], error) {
	q := db.Model(&models.Lead{}).Where("status <> ?", models.LeadNovo)
	return pkg.Paginate[models.Lead](q, p, "updated_at DESC")
}

// MarcarContactado só tem efeito se o lead ainda estiver novo.
func (r *repositoryImpl) MarcarContactado(db *gorm.DB, id, assessorID uint, quando time.Time) (bool, error) {
	res := db.Model(&models.Lead{}).
		Where("id = ? AND status = ?", id, models.LeadNovo).
		Updates(map[string]any{
			"status":     models.LeadContactado,
			"claimed_by": assessorID,
			"claimed_at": quando,
		})
	return res.RowsAffected > 0, res.Error
}
