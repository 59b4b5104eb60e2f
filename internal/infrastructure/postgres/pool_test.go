package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-inventory-api/pkg/config"
)

func TestApplyPoolLimits(t *testing.T) {
	poolCfg, err := pgxpool.ParseConfig("postgres://app@127.0.0.1:5432/bins")
	require.NoError(t, err)

	applyPoolLimits(poolCfg, config.DBConfig{})
	assert.Equal(t, int32(10), poolCfg.MaxConns)
	assert.Equal(t, int32(1), poolCfg.MinConns)

	applyPoolLimits(poolCfg, config.DBConfig{MaxConns: 4, MinConns: 6})
	assert.Equal(t, int32(4), poolCfg.MaxConns)
	assert.Equal(t, int32(1), poolCfg.MinConns, "min mayor que max se ignora")
}

func TestIPv4Resolver_Literales(t *testing.T) {
	r := ipv4Resolver{}
	ctx := context.Background()

	ip, err := r.lookup(ctx, "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = r.lookup(ctx, "::1")
	assert.ErrorIs(t, err, errNoIPv4)
}

func TestIPv4Resolver_RewriteDSN(t *testing.T) {
	r := ipv4Resolver{}
	ctx := context.Background()

	got := r.rewriteDSN(ctx, config.DBConfig{DatabaseURL: "postgres://app:pw@10.1.2.3/bins?sslmode=require"})
	assert.Equal(t, "postgres://app:pw@10.1.2.3:5432/bins?sslmode=require", got)

	ipv6 := "postgres://app@[::1]:6543/bins"
	assert.Equal(t, ipv6, r.rewriteDSN(ctx, config.DBConfig{DatabaseURL: ipv6}))

	got = r.rewriteDSN(ctx, config.DBConfig{Host: "127.0.0.1", Port: 5433, User: "app", DBName: "bins", SSLMode: "disable"})
	assert.Equal(t, "postgres://app:@127.0.0.1:5433/bins?sslmode=disable", got)
}
