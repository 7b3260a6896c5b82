package entities

// FonteARASAAC identifica o catálogo externo de pictogramas
const FonteARASAAC = "ARASAAC"

// PictogramaExterno é um registro transitório vindo do catálogo externo.
// Importado e PictogramaVoxID são preenchidos por usuário e nunca persistidos.
type PictogramaExterno struct {
	IDExterno         int64    `json:"idExterno"`
	Fonte             string   `json:"fonte"`
	Label             string   `json:"label"`
	LabelAlternativo  string   `json:"labelAlternativo"`
	ImagemURL         string   `json:"imagemUrl"`
	ImagemURLColorida string   `json:"imagemUrlColorida"`
	ImagemURLAlta     string   `json:"imagemUrlAlta"`
	Categorias        []string `json:"categorias"`
	Keywords          []string `json:"keywords"`
	Importado         bool     `json:"importado"`
	PictogramaVoxID   *int64   `json:"pictogramaVoxId,omitempty"`
}
