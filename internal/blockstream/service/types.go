package service

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Poller interface {
		Poll(ctx context.Context) error
	}
)
