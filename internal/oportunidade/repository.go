package oportunidade

import "gorm.io/gorm"

type Repository interface {
	Listar(db *gorm.DB) ([]OportunidadeListagem, error)
	Criar(db *gorm.DB, o *Oportunidade) error
	Buscar(db *gorm.DB, id uint) (*Oportunidade, error)
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Listar traz todas as oportunidades, mais recentes primeiro, com o autor.
func (r *repositoryImpl) Listar(db *gorm.DB) ([]OportunidadeListagem, error) {
	var lista []OportunidadeListagem
	err := db.Model(&Oportunidade{}).
		Select("oportunidades.*, usuarios.username AS autor").
		Joins("LEFT JOIN usuarios ON usuarios.id = oportunidades.user_id").
		Order("oportunidades.created_at DESC, oportunidades.id DESC").
		Scan(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *Oportunidade) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) Buscar(db *gorm.DB, id uint) (*Oportunidade, error) {
	var o Oportunidade
	if err := db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	res := db.Model(&Oportunidade{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	res := db.Delete(&Oportunidade{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
