// Command migrate aplica as migrations SQL embutidas com o goose.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/projetovox/vox-backend/internal/infrastructure/config"
	"github.com/projetovox/vox-backend/internal/infrastructure/persistence/migrations"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Gerencia o schema do banco do Vox",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		gooseCmd("up", "Aplica todas as migrations pendentes", cobra.NoArgs),
		gooseCmd("down", "Desfaz a última migration", cobra.NoArgs),
		gooseCmd("status", "Lista as migrations e o estado de cada uma", cobra.NoArgs),
		gooseCmd("version", "Mostra a versão atual do schema", cobra.NoArgs),
		gooseCmd("redo", "Desfaz e reaplica a última migration", cobra.NoArgs),
		upToCmd(),
	)
	return cmd
}

// gooseCmd cria um subcomando que repassa o nome para goose.Run
func gooseCmd(name, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(name)
		},
	}
}

func upToCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up-to VERSION",
		Short: "Aplica as migrations até VERSION",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			return run("up-to", args[0])
		},
	}
}

func run(command string, args ...string) error {
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return fmt.Errorf("goose: failed to open DB: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("goose: failed to connect to DB: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Run(command, db, ".", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	fmt.Printf("goose %s success\n", command)
	return nil
}
