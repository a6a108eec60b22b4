package carteira

import (
	"time"

	"github.com/KromaEnergia/api-arremate/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	ListarImoveis(db *gorm.DB, userID uint) ([]models.Imovel, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]models.Imovel, error)
	BuscarImovel(db *gorm.DB, userID, id uint) (*models.Imovel, error)
	CriarImovel(db *gorm.DB, imovel *models.Imovel) error
	SalvarImovel(db *gorm.DB, imovel *models.Imovel) error
	DeletarImovel(db *gorm.DB, userID, id uint) error
	AdicionarCusto(db *gorm.DB, custo *models.Custo) error
	DeletarCusto(db *gorm.DB, userID, id uint) error
	CustosDesde(db *gorm.DB, userID uint, desde time.Time) ([]models.Custo, error)
	CustosDoUsuario(db *gorm.DB, userID uint) ([]models.Custo, error)
	ContarPorCliente(db *gorm.DB, clienteID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarImoveis(db *gorm.DB, userID uint) ([]models.Imovel, error) {
	var imoveis []models.Imovel
	err := db.Preload("Custos").
		Where("user_id = ?", userID).
		Order("data_aquisicao DESC").Order("id DESC").
		Find(&imoveis).Error
	return imoveis, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]models.Imovel, error) {
	var imoveis []models.Imovel
	err := db.Preload("Custos").Where("cliente_id = ?", clienteID).Find(&imoveis).Error
	return imoveis, err
}

func (r *repositoryImpl) BuscarImovel(db *gorm.DB, userID, id uint) (*models.Imovel, error) {
	var imovel models.Imovel
	err := db.Preload("Custos", func(q *gorm.DB) *gorm.DB {
		return q.Order("data_custo DESC")
	}).Where("id = ? AND user_id = ?", id, userID).First(&imovel).Error
	if err != nil {
		return nil, err
	}
	return &imovel, nil
}

// CriarImovel grava o imóvel e os custos que vierem junto em imovel.Custos.
func (r *repositoryImpl) CriarImovel(db *gorm.DB, imovel *models.Imovel) error {
	for i := range imovel.Custos {
		imovel.Custos[i].UserID = imovel.UserID
	}
	return db.Create(imovel).Error
}

func (r *repositoryImpl) SalvarImovel(db *gorm.DB, imovel *models.Imovel) error {
	return db.Omit("Custos").Save(imovel).Error
}

func (r *repositoryImpl) DeletarImovel(db *gorm.DB, userID, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Imovel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("imovel_id = ?", id).Delete(&models.Custo{}).Error
	})
}

func (r *repositoryImpl) AdicionarCusto(db *gorm.DB, custo *models.Custo) error {
	return db.Create(custo).Error
}

func (r *repositoryImpl) DeletarCusto(db *gorm.DB, userID, id uint) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Custo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) CustosDesde(db *gorm.DB, userID uint, desde time.Time) ([]models.Custo, error) {
	var custos []models.Custo
	err := db.Where("user_id = ? AND data_custo >= ?", userID, desde).
		Order("data_custo ASC").
		Find(&custos).Error
	return custos, err
}

func (r *repositoryImpl) CustosDoUsuario(db *gorm.DB, userID uint) ([]models.Custo, error) {
	var custos []models.Custo
	err := db.Where("user_id = ?", userID).Find(&custos).Error
	return custos, err
}

func (r *repositoryImpl) ContarPorCliente(db *gorm.DB, clienteID uint) (int64, error) {
	var n int64
	err := db.Model(&models.Imovel{}).Where("cliente_id = ?", clienteID).Count(&n).Error
	return n, err
}
