package usuario

import (
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	Salvar(db *gorm.DB, u *Usuario) error
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	AtualizarPerfil(db *gorm.DB, id uint, dados AtualizarPerfilRequest) (*Usuario, error)
	AtualizarSenha(db *gorm.DB, id uint, hash string, precisaRedefinir bool) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// e-mail é comparado sempre em minúsculas
func normalizarEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("email = ?", normalizarEmail(email)).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	u.Email = normalizarEmail(u.Email)
	return db.Save(u).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("username").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) AtualizarPerfil(db *gorm.DB, id uint, dados AtualizarPerfilRequest) (*Usuario, error) {
	existente, err := r.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}
	existente.Username = strings.TrimSpace(dados.Username)
	existente.Telefone = dados.Telefone
	existente.FotoURL = dados.FotoURL
	if err := db.Save(existente).Error; err != nil {
		return nil, err
	}
	return existente, nil
}

func (r *repositoryImpl) AtualizarSenha(db *gorm.DB, id uint, hash string, precisaRedefinir bool) error {
	res := db.Model(&Usuario{}).Where("id = ?", id).Updates(map[string]any{
		"senha":                   hash,
		"precisa_redefinir_senha": precisaRedefinir,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
