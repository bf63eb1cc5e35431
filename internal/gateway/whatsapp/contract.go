//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=whatsapp_test
package whatsapp

import (
	"context"
	"net/http"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type sender interface {
	Send(ctx context.Context, phone, message string) error
}
