package transport

import (
	"context"

	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	FingerprintSource interface {
		Fingerprint(ctx context.Context) (model.Fingerprint, error)
	}
	HealthChecker interface {
		Check(ctx context.Context, in *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error)
	}
)
