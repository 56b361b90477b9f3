package searchers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"flocking-report/internal/shared/configs"

	es "github.com/elastic/go-elasticsearch/v8"
)

// NewClient creates an Elasticsearch client from configuration.
// Addresses without a scheme are treated as http.
func NewClient(cfg configs.ElasticsearchConfig) (*es.Client, error) {
	addresses := make([]string, 0, len(cfg.Addresses))
	for _, address := range cfg.Addresses {
		if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
			address = "http://" + address
		}
		addresses = append(addresses, address)
	}

	clientConfig := es.Config{
		Addresses:  addresses,
		MaxRetries: cfg.MaxRetries,
	}
	if cfg.Username != "" {
		clientConfig.Username = cfg.Username
		clientConfig.Password = cfg.Password
	}

	client, err := es.NewClient(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return client, nil
}

// Ping verifies the cluster is reachable.
func Ping(ctx context.Context, client *es.Client) error {
	res, err := client.Ping(client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("elasticsearch ping failed [%d]: %s", res.StatusCode, string(body))
	}
	return nil
}
