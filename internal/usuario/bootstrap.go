package usuario

import (
	"errors"
	"fmt"
	"io"

	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/utils"
	"gorm.io/gorm"
)

var ErrSenhaAdminObrigatoria = errors.New("ADMIN_PASSWORD é obrigatório em produção")

// AdminInicial descreve o administrador criado na subida do serviço.
type AdminInicial struct {
	Email string
	Senha string
	// em produção a senha precisa vir da configuração
	ExigirSenha bool
	// recebe a senha temporária gerada; nunca vai para o log
	Saida io.Writer
}

// GarantirAdmin cria o administrador inicial caso ainda não exista.
// Sem senha configurada, gera uma temporária e obriga a troca no primeiro login.
func GarantirAdmin(db *gorm.DB, repo Repository, a AdminInicial) error {
	if a.Email == "" {
		return nil
	}
	existente, err := repo.BuscarPorEmail(db, a.Email)
	if err == nil {
		if !existente.IsAdmin {
			existente.IsAdmin = true
			return repo.Salvar(db, existente)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("buscando admin: %w", err)
	}

	senha := a.Senha
	temporaria := senha == ""
	if temporaria {
		if a.ExigirSenha {
			return ErrSenhaAdminObrigatoria
		}
		if senha, err = utils.GerarSenhaTemporaria(12); err != nil {
			return fmt.Errorf("gerando senha do admin: %w", err)
		}
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		return fmt.Errorf("hash da senha do admin: %w", err)
	}

	admin := &Usuario{
		Username:              "admin",
		Email:                 a.Email,
		Senha:                 hash,
		IsAdmin:               true,
		PrecisaRedefinirSenha: temporaria,
	}
	if err := repo.Salvar(db, admin); err != nil {
		return fmt.Errorf("criando admin: %w", err)
	}

	logger.Info().Str("email", admin.Email).Bool("senha_temporaria", temporaria).Msg("Administrador inicial criado")
	if temporaria && a.Saida != nil {
		fmt.Fprintf(a.Saida, "senha temporária do administrador %s: %s\n", admin.Email, senha)
	}
	return nil
}
