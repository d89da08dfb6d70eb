package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/infrastructure/memory"
	"github.com/jhoicas/timebox-api/internal/infrastructure/storage"
	"github.com/jhoicas/timebox-api/pkg/config"
	pkgjwt "github.com/jhoicas/timebox-api/pkg/jwt"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

func newTestCLI(t *testing.T) (*cli, *memory.Store) {
	t.Helper()
	st := memory.NewStore()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		JWT:     config.JWTConfig{Secret: "secreto-cli", Expiration: 30, Issuer: "timebox-api-test"},
		Finance: config.FinanceConfig{DefaultCurrency: "USD"},
	}
	return &cli{cfg: cfg, log: logger.Nop(), repos: storage.FromMemory(st)}, st
}

func run(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(c)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func seedTimebox(t *testing.T, st *memory.Store, project string, status entity.TimeboxStatus) string {
	t.Helper()
	tb := &entity.Timebox{TypeID: "tipo-1", ProjectID: project, Status: status}
	require.NoError(t, st.Timeboxes().Create(context.Background(), tb))
	return tb.ID
}

func TestStats_Tabla(t *testing.T) {
	c, st := newTestCLI(t)
	seedTimebox(t, st, "p1", entity.StatusEnDefinicion)
	seedTimebox(t, st, "p1", entity.StatusDisponible)

	out, err := run(t, c, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "| 2 ")
}

func TestStatus_SetYGetJSON(t *testing.T) {
	c, st := newTestCLI(t)
	id := seedTimebox(t, st, "p1", entity.StatusEnDefinicion)

	_, err := run(t, c, "status", "set", id, "En Ejecución")
	require.NoError(t, err)

	out, err := run(t, c, "--json", "status", "get", id)
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "En Ejecucion", got["estado"])
}

func TestStatus_TimeboxInexistente(t *testing.T) {
	c, _ := newTestCLI(t)

	_, err := run(t, c, "status", "get", "no-existe")

	assert.Error(t, err)
}

func TestList_RequiereProyecto(t *testing.T) {
	c, st := newTestCLI(t)
	id := seedTimebox(t, st, "p9", entity.StatusDisponible)

	_, err := run(t, c, "list")
	require.Error(t, err)

	out, err := run(t, c, "list", "--project", "p9")
	require.NoError(t, err)
	assert.Contains(t, out, id)
}

func TestOrders_FiltraPorDesarrollador(t *testing.T) {
	c, st := newTestCLI(t)
	ctx := context.Background()
	require.NoError(t, st.PaymentOrders().Create(ctx, &entity.PaymentOrder{PayeeID: "dev-1", Amount: decimal.NewFromInt(300), Currency: "USD", Concept: "Anticipo", Status: entity.OrderPendiente}))
	require.NoError(t, st.PaymentOrders().Create(ctx, &entity.PaymentOrder{PayeeID: "dev-2", Amount: decimal.NewFromInt(50), Currency: "USD", Concept: "Otro", Status: entity.OrderPendiente}))

	out, err := run(t, c, "--json", "orders", "--developer", "dev-1")

	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "dev-1", got[0]["developerId"])
}

func TestToken_EmiteJWTValido(t *testing.T) {
	c, _ := newTestCLI(t)

	out, err := run(t, c, "token", "--user", "u-1", "--name", "Ana", "--role", "developer")

	require.NoError(t, err)
	claims, err := pkgjwt.Parse("secreto-cli", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, pkgjwt.RoleDeveloper, claims.Role)
	assert.Equal(t, "timebox-api-test", claims.Issuer)
}

func TestToken_RolInvalido(t *testing.T) {
	c, _ := newTestCLI(t)

	_, err := run(t, c, "token", "--user", "u-1", "--role", "root")

	assert.Error(t, err)
}

func TestMigrate_ExigePostgres(t *testing.T) {
	c, _ := newTestCLI(t)

	_, err := run(t, c, "migrate")
	require.Error(t, err)

	out, err := run(t, c, "migrate", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "001_schema.sql")
}
