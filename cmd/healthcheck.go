package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/router/consts"
)

// healthcheckCommand ヘルスチェックコマンド
func healthcheckCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check that the local Sociogram server answers /api/ping",
		Run: func(_ *cobra.Command, _ []string) {
			logger := getCLILogger()
			defer logger.Sync()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			url := fmt.Sprintf("http://localhost:%d/api/ping", c.Port)
			version, err := checkHealth(ctx, http.DefaultClient, url)
			if err != nil {
				logger.Fatal("healthcheck failed", zap.String("url", url), zap.Error(err))
			}
			logger.Info("healthy", zap.String("serverVersion", version))
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "healthcheck request timeout")
	return cmd
}

// checkHealth urlにpingを送り、応答したサーバーのバージョンを返します
func checkHealth(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "sociogram-healthcheck/"+Version)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(body)) != http.StatusText(http.StatusOK) {
		return "", fmt.Errorf("unexpected body: %q", body)
	}
	return resp.Header.Get(consts.HeaderVersion), nil
}
