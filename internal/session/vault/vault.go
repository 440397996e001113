package vault

import (
	"context"
	"errors"

	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// ErrCorrupted indica conteúdo não parseável no registro durável. O boot
// trata como ausência de sessão, mas o erro sobe para ser logado.
var ErrCorrupted = errors.New("corrupted session record")

// Vault guarda o registro durável da sessão: uma única chave com o User
// serializado. Lido uma vez no boot, escrito no login/registro, apagado
// no logout.
type Vault interface {
	// Load retorna (user, true, nil) quando há registro válido;
	// (_, false, nil) quando não há registro; (_, false, ErrCorrupted)
	// quando o conteúdo existe mas não parseia.
	Load(ctx context.Context) (domain.User, bool, error)
	Save(ctx context.Context, u domain.User) error
	Clear(ctx context.Context) error
}
