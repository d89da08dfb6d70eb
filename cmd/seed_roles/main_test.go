package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoles_AplicaMonedaPorDefectoYOrdena(t *testing.T) {
	raw := []byte(`
moneda: cop
roles:
  - id: tester
    nombre: Tester
    sueldo_semanal: 400.5
  - id: dev
    nombre: "Desarrollador O'Neil"
    sueldo_semanal: 600
    moneda: usd
`)

	roles, err := parseRoles(raw)

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "dev", roles[0].ID)
	assert.Equal(t, "USD", roles[0].Currency)
	assert.Equal(t, "COP", roles[1].Currency)
	assert.Equal(t, "400.5", roles[1].WeeklySalary.String())
}

func TestParseRoles_Latin1(t *testing.T) {
	// "Señor" en ISO-8859-1 (0xF1 = ñ).
	raw := []byte("roles:\n  - id: sr\n    nombre: Se\xf1or\n    sueldo_semanal: 1\n")

	roles, err := parseRoles(raw)

	require.NoError(t, err)
	assert.Equal(t, "Señor", roles[0].Name)
}

func TestParseRoles_Errores(t *testing.T) {
	cases := map[string]string{
		"sin id":    "roles:\n  - nombre: X\n    sueldo_semanal: 1\n",
		"duplicado": "roles:\n  - {id: a, nombre: A, sueldo_semanal: 1}\n  - {id: a, nombre: B, sueldo_semanal: 2}\n",
		"negativo":  "roles:\n  - {id: a, nombre: A, sueldo_semanal: -1}\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseRoles([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestWriteSQL_Upsert(t *testing.T) {
	inactive := false
	roles, err := parseRoles([]byte("roles:\n  - {id: dev, nombre: \"O'Neil\", sueldo_semanal: 600}\n"))
	require.NoError(t, err)
	roles = append(roles, roleSeed{ID: "zz", Name: "Z", Active: &inactive})

	var b strings.Builder
	require.NoError(t, writeSQL(&b, roles))

	sql := b.String()
	assert.Contains(t, sql, "('dev', 'O''Neil', 600.00, NULL, true),")
	assert.Contains(t, sql, "('zz', 'Z', 0.00, NULL, false)\n")
	assert.Contains(t, sql, "ON CONFLICT (role_id) DO UPDATE SET")
}
