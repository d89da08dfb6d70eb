// seed_roles genera el script SQL que puebla role_sueldos (sueldo base semanal por rol)
// a partir de un archivo YAML.
//
// Uso: go run ./cmd/seed_roles [ruta/roles.yaml]
// Por defecto busca roles.yaml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/sql/004_seed_role_sueldos.sql
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

type catalog struct {
	Currency string     `yaml:"moneda"`
	Roles    []roleSeed `yaml:"roles"`
}

type roleSeed struct {
	ID           string          `yaml:"id"`
	Name         string          `yaml:"nombre"`
	WeeklySalary decimal.Decimal `yaml:"sueldo_semanal"`
	Currency     string          `yaml:"moneda"`
	Active       *bool           `yaml:"activo"`
}

func main() {
	yamlPath := "roles.yaml"
	if len(os.Args) > 1 {
		yamlPath = os.Args[1]
	}
	raw, err := os.ReadFile(yamlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer YAML: %v\n", err)
		os.Exit(1)
	}

	roles, err := parseRoles(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar YAML: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "sql", "004_seed_role_sueldos.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, roles); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d roles\n", outPath, len(roles))
}

// parseRoles decodifica el catálogo. Acepta archivos en ISO-8859-1 además de UTF-8.
func parseRoles(raw []byte) ([]roleSeed, error) {
	if !utf8.Valid(raw) {
		decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
		if err != nil {
			return nil, err
		}
		raw = decoded
	}

	var c catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(c.Roles))
	roles := make([]roleSeed, 0, len(c.Roles))
	for i, r := range c.Roles {
		r.ID = strings.TrimSpace(r.ID)
		r.Name = strings.TrimSpace(r.Name)
		if r.ID == "" || r.Name == "" {
			return nil, fmt.Errorf("rol #%d: id y nombre son obligatorios", i+1)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("rol %q duplicado", r.ID)
		}
		if r.WeeklySalary.IsNegative() {
			return nil, fmt.Errorf("rol %q: sueldo_semanal negativo", r.ID)
		}
		if r.Currency == "" {
			r.Currency = c.Currency
		}
		r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
		seen[r.ID] = true
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })
	return roles, nil
}

func writeSQL(w io.Writer, roles []roleSeed) error {
	var b strings.Builder
	b.WriteString("-- Sueldo base semanal por rol\n")
	b.WriteString("-- Generado por cmd/seed_roles\n\n")
	if len(roles) == 0 {
		b.WriteString("SELECT 1;\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("INSERT INTO role_sueldos (role_id, rol_nombre, sueldo_base_semanal, moneda, activo) VALUES\n")
	for i, r := range roles {
		active := true
		if r.Active != nil {
			active = *r.Active
		}
		currency := "NULL"
		if r.Currency != "" {
			currency = "'" + escapeSQL(r.Currency) + "'"
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %s, %s, %t)",
			escapeSQL(r.ID), escapeSQL(r.Name), r.WeeklySalary.StringFixed(2), currency, active)
		if i < len(roles)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (role_id) DO UPDATE SET\n")
	b.WriteString("  rol_nombre = EXCLUDED.rol_nombre,\n")
	b.WriteString("  sueldo_base_semanal = EXCLUDED.sueldo_base_semanal,\n")
	b.WriteString("  moneda = EXCLUDED.moneda,\n")
	b.WriteString("  activo = EXCLUDED.activo;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
