package calculosalvo

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *CalculoSalvo) error
	Listar(db *gorm.DB, userID uint) ([]CalculoSalvo, error)
	Buscar(db *gorm.DB, userID, id uint) (*CalculoSalvo, error)
	AtualizarDados(db *gorm.DB, userID, id uint, dados map[string]any) error
	Deletar(db *gorm.DB, userID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *CalculoSalvo) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, userID uint) ([]CalculoSalvo, error) {
	var calculos []CalculoSalvo
	err := db.Where("user_id = ?", userID).Order("id DESC").Find(&calculos).Error
	return calculos, err
}

func (r *repositoryImpl) Buscar(db *gorm.DB, userID, id uint) (*CalculoSalvo, error) {
	var c CalculoSalvo
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// AtualizarDados troca só os dados; nome e cidade ficam como estão.
func (r *repositoryImpl) AtualizarDados(db *gorm.DB, userID, id uint, dados map[string]any) error {
	c, err := r.Buscar(db, userID, id)
	if err != nil {
		return err
	}
	c.Dados = dados
	return db.Model(c).Select("dados").Updates(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, userID, id uint) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&CalculoSalvo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
