package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/DefiantLabs/RouteSwap/config"
	"github.com/avast/retry-go"
	"go.uber.org/zap"
)

var (
	RtyAttNum = uint(5)
	RtyAtt    = retry.Attempts(RtyAttNum)
	RtyDel    = retry.Delay(time.Millisecond * 400)
	RtyErr    = retry.LastErrorOnly(true)
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// LoadPoolsFile reads a pools document from disk.
func LoadPoolsFile(path string) ([]PoolRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc PoolsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("pools file %s: %w", path, err)
	}
	if len(doc.Pools) == 0 {
		return nil, ErrEmptyCatalog.Wrap(path)
	}
	return doc.Pools, nil
}

// FetchRemotePools downloads the pool set from the upstream catalog endpoint,
// retrying transient failures.
func FetchRemotePools(url string) ([]PoolRecord, error) {
	var doc PoolsDocument

	err := retry.Do(func() error {
		resp, err := httpClient.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("catalog endpoint returned status %d", resp.StatusCode)
		}

		doc = PoolsDocument{}
		return json.NewDecoder(resp.Body).Decode(&doc)
	}, RtyAtt, RtyDel, RtyErr)
	if err != nil {
		return nil, ErrCatalogUnreached.Wrap(err.Error())
	}

	if len(doc.Pools) == 0 {
		return nil, ErrEmptyCatalog.Wrap(url)
	}
	return doc.Pools, nil
}

// PollRemote refreshes the registry from the upstream catalog endpoint on an
// interval. A failed refresh keeps the last good pool set.
func PollRemote(registry *Registry, url string, interval time.Duration) {
	for {
		time.Sleep(interval)

		records, err := FetchRemotePools(url)
		if err != nil {
			config.Logger.Error("Catalog refresh", zap.String("url", url), zap.Error(err))
			continue
		}

		pools, err := poolsFromRecords(records)
		if err != nil {
			config.Logger.Error("Catalog refresh, bad pool record", zap.String("url", url), zap.Error(err))
			continue
		}

		registry.Replace(pools)
		config.Logger.Info("Catalog refreshed", zap.Int("pools", len(pools)))
	}
}
