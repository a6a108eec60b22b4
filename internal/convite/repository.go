package convite

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, c *Convite) error
	BuscarPorToken(db *gorm.DB, token string) (*Convite, error)
	Listar(db *gorm.DB) ([]Convite, error)
	MarcarUsado(db *gorm.DB, id uint, quando time.Time) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Convite) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorToken(db *gorm.DB, token string) (*Convite, error) {
	var c Convite
	if err := db.Where("token = ?", token).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Convite, error) {
	var convites []Convite
	err := db.Order("created_at DESC").Find(&convites).Error
	return convites, err
}

// MarcarUsado só marca convites ainda não usados; retorna ErrRecordNotFound se outro aceite chegou antes.
func (r *repositoryImpl) MarcarUsado(db *gorm.DB, id uint, quando time.Time) error {
	res := db.Model(&Convite{}).Where("id = ? AND usado_em IS NULL", id).Update("usado_em", quando)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
