//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=objectstore_test
package objectstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}
