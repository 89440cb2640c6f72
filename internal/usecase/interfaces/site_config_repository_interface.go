package interfaces

import "context"

// ISiteConfigRepository abstracts DynamoDB persistence for the site
// configuration, stored one row per key.
type ISiteConfigRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	PutAll(ctx context.Context, pairs map[string]string) error
}
