package cliente

import (
	"github.com/KromaEnergia/api-arremate/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Listar(db *gorm.DB, assessorID uint) ([]models.Cliente, error)
	Buscar(db *gorm.DB, assessorID, id uint) (*models.Cliente, error)
	Criar(db *gorm.DB, c *models.Cliente) error
	Salvar(db *gorm.DB, c *models.Cliente) error
	Deletar(db *gorm.DB, id uint) error
	LiberarLead(db *gorm.DB, telefone string, assessorID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, assessorID uint) ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := db.Where("assessor_id = ?", assessorID).Order("created_at DESC").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Buscar(db *gorm.DB, assessorID, id uint) (*models.Cliente, error) {
	var c models.Cliente
	if err := db.Where("id = ? AND assessor_id = ?", id, assessorID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *models.Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *models.Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&models.Cliente{}, id).Error
}

// LiberarLead devolve à piscina o lead que o assessor puxou com esse telefone.
func (r *repositoryImpl) LiberarLead(db *gorm.DB, telefone string, assessorID uint) error {
	return db.Model(&models.Lead{}).
		Where("whatsapp = ? AND claimed_by = ?", telefone, assessorID).
		Updates(map[string]any{
			"status":     models.LeadNovo,
			"claimed_by": nil,
			"claimed_at": nil,
		}).Error
}
