package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/timebox-api/pkg/config"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// NewPool crea el pool PostgreSQL. DATABASE_URL tiene prioridad sobre DB_HOST/DB_PORT/etc.
// Con log != nil y SlowQuery > 0 registra las consultas que superan el umbral.
func NewPool(ctx context.Context, cfg config.DBConfig, appName string, log *logger.Logger) (*pgxpool.Pool, error) {
	dsn := cfg.ConnectionString()
	if cfg.ForceIPv4 {
		dsn = withIPv4Host(dsn)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	if cfg.ForceIPv4 {
		poolConfig.ConnConfig.DialFunc = dialIPv4
	}
	if appName != "" {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = appName
	}
	if log != nil && cfg.SlowQuery > 0 {
		poolConfig.ConnConfig.Tracer = &slowQueryTracer{log: log.Component("postgres"), threshold: cfg.SlowQuery}
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 && cfg.MinConns <= poolConfig.MaxConns {
		poolConfig.MinConns = cfg.MinConns
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC <-> shopspring/decimal en todas las conexiones.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

type queryStartKey struct{}

type queryStart struct {
	sql string
	at  time.Time
}

// slowQueryTracer implementa pgx.QueryTracer.
type slowQueryTracer struct {
	log       *logger.Logger
	threshold time.Duration
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, at: time.Now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	elapsed := time.Since(start.at)
	if elapsed < t.threshold {
		return
	}
	ev := t.log.Warn()
	if data.Err != nil {
		ev = ev.Err(data.Err)
	}
	ev.Dur("elapsed", elapsed).Str("sql", compactSQL(start.sql)).Msg("consulta lenta")
}

// compactSQL colapsa espacios y recorta para el log.
func compactSQL(sql string) string {
	out := make([]rune, 0, len(sql))
	space := false
	for _, r := range sql {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			if !space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = true
			continue
		}
		space = false
		out = append(out, r)
	}
	if len(out) > 240 {
		return string(out[:240]) + "..."
	}
	return string(out)
}

func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ipv4, err := resolveIPv4(ctx, host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// resolveIPv4 prueba el resolver del sistema y luego uno público,
// porque el DNS de algunos contenedores solo devuelve AAAA.
func resolveIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("%s es IPv6", host)
	}
	resolvers := []*net.Resolver{
		net.DefaultResolver,
		{
			PreferGo: true,
			Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
				d := net.Dialer{}
				return d.DialContext(ctx, "udp", "8.8.8.8:53")
			},
		},
	}
	var lastErr error
	for _, r := range resolvers {
		ips, err := r.LookupIP(ctx, "ip4", host)
		if err != nil {
			lastErr = err
			continue
		}
		for _, ip := range ips {
			if ip.To4() != nil {
				return ip.String(), nil
			}
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("sin IPv4 para %s", host)
	}
	return "", lastErr
}

// withIPv4Host reescribe el host de un DSN URL por su IPv4; ante cualquier fallo devuelve dsn intacto.
func withIPv4Host(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		return dsn
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	ipv4, err := resolveIPv4(context.Background(), u.Hostname())
	if err != nil {
		return dsn
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
