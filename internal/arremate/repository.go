package arremate

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *Arremate) error
	Listar(db *gorm.DB, userID uint, crescente bool) ([]Arremate, error)
	Buscar(db *gorm.DB, userID, id uint) (*Arremate, error)
	Salvar(db *gorm.DB, a *Arremate) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Arremate) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, userID uint, crescente bool) ([]Arremate, error) {
	ordem := "data_arremate DESC, id DESC"
	if crescente {
		ordem = "data_arremate ASC, id ASC"
	}
	var arremates []Arremate
	err := db.Where("user_id = ?", userID).Order(ordem).Find(&arremates).Error
	return arremates, err
}

func (r *repositoryImpl) Buscar(db *gorm.DB, userID, id uint) (*Arremate, error) {
	var a Arremate
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Arremate) error {
	return db.Save(a).Error
}
