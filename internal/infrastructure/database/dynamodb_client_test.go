package database

import (
	"context"
	"testing"

	appconfig "mecanica_xpto/pkg/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := NewDynamoDBConfig(ctx, appconfig.DynamoDBConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)

	ep, err := cfg.EndpointResolverWithOptions.ResolveEndpoint(dynamodb.ServiceID, "sa-east-1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", ep.URL)
}

func TestConnectDynamoDB_NoEndpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), appconfig.DynamoDBConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
