package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
	"github.com/projetovox/vox-backend/internal/infrastructure/metrics"
)

// Tamanhos máximos das colunas de pictogramas
const (
	maxLabelLen            = 100
	maxLabelAlternativoLen = 200
)

// minTokenSugestao é o tamanho mínimo (exclusivo) de uma palavra usada em sugestões
const minTokenSugestao = 2

// ImportacaoService liga o catálogo externo aos pictogramas locais:
// busca com marcação de importados, importação e sugestões.
type ImportacaoService struct {
	catalog        ports.PictogramCatalog
	pictogramaRepo repositories.PictogramaRepository
	categoriaRepo  repositories.CategoriaRepository
	usuarioRepo    repositories.UsuarioRepository
	uow            ports.UnitOfWork
	metrics        *metrics.Metrics
	logger         ports.Logger
}

// NewImportacaoService cria um novo ImportacaoService. metrics pode ser nil.
func NewImportacaoService(
	catalog ports.PictogramCatalog,
	pictogramaRepo repositories.PictogramaRepository,
	categoriaRepo repositories.CategoriaRepository,
	usuarioRepo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	m *metrics.Metrics,
	logger ports.Logger,
) *ImportacaoService {
	return &ImportacaoService{
		catalog:        catalog,
		pictogramaRepo: pictogramaRepo,
		categoriaRepo:  categoriaRepo,
		usuarioRepo:    usuarioRepo,
		uow:            uow,
		metrics:        m,
		logger:         logger,
	}
}

// ImportarInput identifica um pictograma externo e a categoria de destino
type ImportarInput struct {
	IDExterno   int64
	CategoriaID int64
	Colorido    bool
}

// Buscar procura no catálogo por palavra. Com usuarioID, marca os já importados.
func (s *ImportacaoService) Buscar(ctx context.Context, palavra string, limite int, usuarioID *int64) ([]*entities.PictogramaExterno, error) {
	externos := s.catalog.SearchByKeyword(ctx, palavra, limite)
	return s.marcarSe(ctx, externos, usuarioID)
}

// BuscarPorCategoria procura no catálogo pelas palavras-chave de uma categoria
func (s *ImportacaoService) BuscarPorCategoria(ctx context.Context, nome string, limite int, usuarioID *int64) ([]*entities.PictogramaExterno, error) {
	externos := s.catalog.SearchByCategory(ctx, nome, limite)
	return s.marcarSe(ctx, externos, usuarioID)
}

// BuscarPorID busca um pictograma externo. Ausência ou falha do catálogo é NOT_FOUND.
func (s *ImportacaoService) BuscarPorID(ctx context.Context, idExterno int64, usuarioID *int64) (*entities.PictogramaExterno, error) {
	externo, ok := s.catalog.FindByID(ctx, idExterno)
	if !ok {
		return nil, errors.ErrPictogramaExternoNotFound.WithParams(map[string]interface{}{"ID": idExterno})
	}
	if _, err := s.marcarSe(ctx, []*entities.PictogramaExterno{externo}, usuarioID); err != nil {
		return nil, err
	}
	return externo, nil
}

// Status informa se o catálogo externo está respondendo
func (s *ImportacaoService) Status(ctx context.Context) bool {
	return s.catalog.IsAvailable(ctx)
}

// Importar cria um pictograma local a partir de um externo, numa transação
func (s *ImportacaoService) Importar(ctx context.Context, input ImportarInput, usuarioID int64) (*entities.Pictograma, error) {
	pictograma, err := s.importar(ctx, input, usuarioID)
	s.countImport(err)
	return pictograma, err
}

func (s *ImportacaoService) importar(ctx context.Context, input ImportarInput, usuarioID int64) (*entities.Pictograma, error) {
	externo, ok := s.catalog.FindByID(ctx, input.IDExterno)
	if !ok {
		return nil, errors.ErrPictogramaExternoNotFound.WithParams(map[string]interface{}{"ID": input.IDExterno})
	}

	var pictograma *entities.Pictograma
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		categoria, err := requireCategoria(txCtx, s.categoriaRepo, input.CategoriaID)
		if err != nil {
			return err
		}
		if _, err := requireUsuario(txCtx, s.usuarioRepo, usuarioID); err != nil {
			return err
		}
		if !categoria.IsPadrao() && !entities.IsOwnedBy(categoria, usuarioID) {
			return errors.ErrAcessoNegado
		}

		label := truncateRunes(externo.Label, maxLabelLen)
		exists, err := s.pictogramaRepo.ExistsByLabelAndCategoriaAndUsuario(txCtx, label, categoria.ID, usuarioID)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrPictogramaJaImportado.WithParams(map[string]interface{}{"Label": label})
		}

		count, err := s.pictogramaRepo.CountAtivosByCategoria(txCtx, categoria.ID)
		if err != nil {
			return err
		}

		imagem := externo.ImagemURL
		if input.Colorido && externo.ImagemURLColorida != "" {
			imagem = externo.ImagemURLColorida
		}

		owner := usuarioID
		pictograma = &entities.Pictograma{
			Label:            label,
			LabelAlternativo: truncateRunes(externo.LabelAlternativo, maxLabelAlternativoLen),
			Cor:              corOuPadrao(categoria.Cor),
			ImagemURL:        imagem,
			Tipo:             entities.TipoImagem,
			Ativo:            true,
			Padrao:           false,
			Ordem:            int(count) + 1,
			CategoriaID:      categoria.ID,
			UsuarioID:        &owner,
		}
		return s.pictogramaRepo.Create(txCtx, pictograma)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pictograma imported",
		"id_externo", input.IDExterno,
		"pictograma_id", pictograma.ID,
		"categoria_id", input.CategoriaID,
		"usuario_id", usuarioID,
	)
	return pictograma, nil
}

// ImportarLote importa em sequência. Falhas são registradas no log e puladas,
// o lote nunca falha como um todo.
func (s *ImportacaoService) ImportarLote(ctx context.Context, inputs []ImportarInput, usuarioID int64) []*entities.Pictograma {
	importados := make([]*entities.Pictograma, 0, len(inputs))
	for _, input := range inputs {
		pictograma, err := s.Importar(ctx, input, usuarioID)
		if err != nil {
			s.logger.Warn("batch import item failed",
				"id_externo", input.IDExterno,
				"categoria_id", input.CategoriaID,
				"error", err,
			)
			continue
		}
		importados = append(importados, pictograma)
	}

	s.logger.Info("batch import finished", "requested", len(inputs), "imported", len(importados))
	return importados
}

// Sugerir monta sugestões a partir das palavras de um texto livre.
// Palavras com até 2 letras são ignoradas e o resultado nunca passa de limite.
func (s *ImportacaoService) Sugerir(ctx context.Context, texto string, limite int, usuarioID *int64) ([]*entities.PictogramaExterno, error) {
	sugestoes := s.sugerir(ctx, texto, limite)
	return s.marcarSe(ctx, sugestoes, usuarioID)
}

func (s *ImportacaoService) sugerir(ctx context.Context, texto string, limite int) []*entities.PictogramaExterno {
	tokens := tokensSugestao(texto)
	if len(tokens) == 0 || limite <= 0 {
		return []*entities.PictogramaExterno{}
	}

	porToken := max(1, limite/len(tokens))
	seen := make(map[int64]struct{})
	sugestoes := make([]*entities.PictogramaExterno, 0, limite)

	for _, token := range tokens {
		for _, externo := range s.catalog.SearchByKeyword(ctx, token, porToken) {
			if _, dup := seen[externo.IDExterno]; dup {
				continue
			}
			seen[externo.IDExterno] = struct{}{}
			sugestoes = append(sugestoes, externo)
			if len(sugestoes) == limite {
				return sugestoes
			}
		}
	}
	return sugestoes
}

// MarcarImportados preenche importado e pictogramaVoxId comparando o label
// dos externos com os pictogramas ativos do usuário, sem diferenciar maiúsculas.
func (s *ImportacaoService) MarcarImportados(ctx context.Context, externos []*entities.PictogramaExterno, usuarioID int64) ([]*entities.PictogramaExterno, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}

	pictogramas, err := s.pictogramaRepo.ListAtivosByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	porLabel := make(map[string]int64, len(pictogramas))
	for _, p := range pictogramas {
		key := strings.ToLower(p.Label)
		if _, ok := porLabel[key]; !ok {
			porLabel[key] = p.ID
		}
	}

	for _, externo := range externos {
		if id, ok := porLabel[strings.ToLower(externo.Label)]; ok {
			externo.Importado = true
			externo.PictogramaVoxID = &id
		} else {
			externo.Importado = false
			externo.PictogramaVoxID = nil
		}
	}
	return externos, nil
}

func (s *ImportacaoService) marcarSe(ctx context.Context, externos []*entities.PictogramaExterno, usuarioID *int64) ([]*entities.PictogramaExterno, error) {
	if usuarioID == nil {
		return externos, nil
	}
	return s.MarcarImportados(ctx, externos, *usuarioID)
}

func (s *ImportacaoService) countImport(err error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case err == nil:
	case errors.KindOf(err) == errors.KindBusinessRule:
		outcome = "rejected"
	case errors.KindOf(err) == errors.KindNotFound:
		outcome = "not_found"
	default:
		outcome = "error"
	}
	s.metrics.Imports.WithLabelValues(outcome).Inc()
}

// tokensSugestao separa o texto em palavras minúsculas, sem repetição
func tokensSugestao(texto string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(texto)) {
		if utf8.RuneCountInString(field) <= minTokenSugestao {
			continue
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		tokens = append(tokens, field)
	}
	return tokens
}
