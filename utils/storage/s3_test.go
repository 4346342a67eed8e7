package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const (
	bucketName = "test-bucket"
	s3Key      = "AKID"
	s3Secret   = "SECRETPASSWORD"
)

func TestS3FileStorage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test which requires docker")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "minio/minio",
		Tag:        "latest",
		Cmd:        []string{"server", "/data"},
		Env: []string{
			"MINIO_ROOT_USER=" + s3Key,
			"MINIO_ROOT_PASSWORD=" + s3Secret,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })
	require.NoError(t, resource.Expire(120))

	endpoint := fmt.Sprintf("http://localhost:%s", resource.GetPort("9000/tcp"))
	fs, err := NewS3FileStorage(context.Background(), S3Config{
		Bucket:         bucketName,
		Region:         "ap-northeast-1",
		Endpoint:       endpoint,
		AccessKey:      s3Key,
		SecretKey:      s3Secret,
		ForcePathStyle: true,
	})
	require.NoError(t, err)

	require.NoError(t, pool.Retry(func() error {
		_, err := fs.client.CreateBucket(context.Background(), &s3.CreateBucketInput{
			Bucket: fs.bucket,
		})
		return err
	}))

	testFileStorage(t, fs)
}
