package services_test

import (
	"testing"

	"github.com/fxcalc/currency-calculator-api/internal/core/domain"
	"github.com/fxcalc/currency-calculator-api/internal/core/services"
	"github.com/fxcalc/currency-calculator-api/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoService_Version(t *testing.T) {
	svc := services.NewInfoService("1.0.0")

	assert.Equal(t, "1.0.0", svc.Version())
}

func TestInfoService_EmptyVersion(t *testing.T) {
	// The provider never fails; an empty configured value is passed through.
	svc := services.NewInfoService("")

	assert.Equal(t, "", svc.Version())
}

func TestNewServiceContainer(t *testing.T) {
	cfg := &config.Config{AppVersion: "1.2.3"}

	container := services.NewServiceContainer(cfg, domain.DefaultRateTable())

	require.NotNil(t, container.Exchange)
	require.NotNil(t, container.Info)
	assert.Equal(t, "1.2.3", container.Info.Version())
}
