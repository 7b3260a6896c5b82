// Package migrations contém o schema do banco em migrations SQL do goose.
package migrations

import "embed"

// FS contém os arquivos NNNNN_nome.sql aplicados por cmd/migrate
//
//go:embed *.sql
var FS embed.FS
