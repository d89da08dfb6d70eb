// timeboxctl herramienta de operación: migraciones, consulta y cambio de estado
// de timeboxes, órdenes de pago y emisión de tokens de servicio.
//
// Uso: go run ./cmd/timeboxctl <comando> [flags]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/finance"
	"github.com/jhoicas/timebox-api/internal/application/usecase"
	"github.com/jhoicas/timebox-api/internal/infrastructure/postgres"
	"github.com/jhoicas/timebox-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/timebox-api/internal/infrastructure/storage"
	"github.com/jhoicas/timebox-api/pkg/config"
	pkgjwt "github.com/jhoicas/timebox-api/pkg/jwt"
	"github.com/jhoicas/timebox-api/pkg/keylock"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// cli estado compartido por los subcomandos. repos se abre bajo demanda.
type cli struct {
	cfg      *config.Config
	log      *logger.Logger
	repos    *storage.Repositories
	close    func()
	jsonOut  bool
	loadConf func() (*config.Config, error)
}

func main() {
	c := &cli{loadConf: config.Load}
	root := newRootCmd(c)
	err := root.Execute()
	if c.close != nil {
		c.close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:          "timeboxctl",
		Short:        "Operación del ciclo de vida de timeboxes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg != nil {
				return nil
			}
			cfg, err := c.loadConf()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "salida JSON")

	root.AddCommand(
		migrateCmd(c),
		statsCmd(c),
		listCmd(c),
		statusCmd(c),
		ordersCmd(c),
		tokenCmd(c),
	)
	return root
}

func (c *cli) open(ctx context.Context) (*storage.Repositories, error) {
	if c.repos != nil {
		return c.repos, nil
	}
	repos, closeFn, err := storage.Open(ctx, c.cfg, c.log)
	if err != nil {
		return nil, err
	}
	c.repos, c.close = repos, closeFn
	return repos, nil
}

func (c *cli) timeboxes(ctx context.Context) (*usecase.TimeboxUseCase, error) {
	repos, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewTimeboxUseCase(repos.Timeboxes, repos.Tx, keylock.New(), c.log), nil
}

func (c *cli) render(w io.Writer, v any, header table.Row, rows []table.Row) error {
	if c.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	tw.Render()
	return nil
}

func migrateCmd(c *cli) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes en PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				all, err := migrations.Load()
				if err != nil {
					return err
				}
				rows := make([]table.Row, 0, len(all))
				for _, m := range all {
					rows = append(rows, table.Row{m.Version, m.Name})
				}
				return c.render(cmd.OutOrStdout(), all, table.Row{"Versión", "Archivo"}, rows)
			}
			if c.cfg.Storage.Driver != config.StoragePostgres {
				return fmt.Errorf("migrate requiere STORAGE_DRIVER=postgres")
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, c.cfg.DB, c.cfg.App.Name, c.log)
			if err != nil {
				return err
			}
			defer pool.Close()
			applied, err := migrations.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "esquema al día")
				return nil
			}
			rows := make([]table.Row, 0, len(applied))
			for _, m := range applied {
				rows = append(rows, table.Row{m.Version, m.Name})
			}
			return c.render(cmd.OutOrStdout(), applied, table.Row{"Versión", "Aplicada"}, rows)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "solo listar las migraciones embebidas")
	return cmd
}

func statsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Conteo de timeboxes por estado",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := c.timeboxes(cmd.Context())
			if err != nil {
				return err
			}
			s, err := uc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), s,
				table.Row{"Total", "En Definicion", "Disponible", "En Ejecucion", "Finalizado"},
				[]table.Row{{s.Total, s.EnDefinicion, s.Disponible, s.EnEjecucion, s.Finalizado}})
		},
	}
}

func listCmd(c *cli) *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los timeboxes de un proyecto",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := c.timeboxes(cmd.Context())
			if err != nil {
				return err
			}
			list, err := uc.ListByProject(cmd.Context(), project)
			if err != nil {
				return err
			}
			rows := make([]table.Row, 0, len(list))
			for _, tb := range list {
				amount := "-"
				if tb.Amount != nil {
					amount = tb.Amount.StringFixed(2)
				}
				rows = append(rows, table.Row{tb.ID, tb.TypeID, tb.Status, amount, tb.CreatedAt.Format("2006-01-02")})
			}
			return c.render(cmd.OutOrStdout(), list, table.Row{"ID", "Tipo", "Estado", "Monto", "Creado"}, rows)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "id del proyecto")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func statusCmd(c *cli) *cobra.Command {
	status := &cobra.Command{Use: "status", Short: "Consulta o fuerza el estado de un timebox"}

	status.AddCommand(&cobra.Command{
		Use:   "get <timebox-id>",
		Short: "Muestra el estado actual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := c.timeboxes(cmd.Context())
			if err != nil {
				return err
			}
			s, err := uc.GetStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), s, table.Row{"ID", "Estado"}, []table.Row{{s.ID, s.Status}})
		},
	})

	status.AddCommand(&cobra.Command{
		Use:   "set <timebox-id> <estado>",
		Short: "Fuerza el estado (En Definicion, Disponible, En Ejecucion, Finalizado)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := c.timeboxes(cmd.Context())
			if err != nil {
				return err
			}
			s, err := uc.UpdateStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), s, table.Row{"ID", "Estado"}, []table.Row{{s.ID, s.Status}})
		},
	})
	return status
}

func ordersCmd(c *cli) *cobra.Command {
	var status, payee string
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Lista órdenes de pago",
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			// Sin renderer: el listado no genera PDF.
			svc := finance.NewOrderService(repos.PaymentOrders, repos.Payments, nil, c.cfg.Finance.DefaultCurrency, c.log)
			list, err := svc.ListOrders(cmd.Context(), status, payee)
			if err != nil {
				return err
			}
			out := make([]dto.PaymentOrderResponse, 0, len(list))
			rows := make([]table.Row, 0, len(list))
			for _, o := range list {
				out = append(out, dto.NewPaymentOrderResponse(o))
				rows = append(rows, table.Row{o.ID, o.PayeeID, o.Amount.StringFixed(2), o.Currency, o.Status, o.Concept})
			}
			return c.render(cmd.OutOrStdout(), out, table.Row{"ID", "Beneficiario", "Monto", "Moneda", "Estado", "Concepto"}, rows)
		},
	}
	cmd.Flags().StringVar(&status, "estado", "", "filtrar por estado")
	cmd.Flags().StringVar(&payee, "developer", "", "filtrar por desarrollador")
	return cmd
}

func tokenCmd(c *cli) *cobra.Command {
	var userID, name, role string
	var minutes int
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT firmado con JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch role {
			case pkgjwt.RoleAdmin, pkgjwt.RoleOperator, pkgjwt.RoleDeveloper:
			default:
				return fmt.Errorf("rol inválido %q", role)
			}
			if minutes <= 0 {
				minutes = c.cfg.JWT.Expiration
			}
			tok, err := pkgjwt.Generate(c.cfg.JWT.Secret, userID, name, role, c.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "id del usuario")
	cmd.Flags().StringVar(&name, "name", "", "nombre visible")
	cmd.Flags().StringVar(&role, "role", pkgjwt.RoleOperator, "admin|operator|developer")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
