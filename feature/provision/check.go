package provision

import (
	"context"
	"fmt"
)

// CheckAssets returns the local assets that have no object in the bucket.
func (p *Provisioner) CheckAssets(ctx context.Context) ([]string, error) {
	assets, _, err := ScanAssets(p.opts.Assets.Dir)
	if err != nil {
		return nil, err
	}

	prefix := p.opts.Bucket.PathPrefix
	objects, err := p.store.ListObjects(ctx, p.opts.Bucket.Name, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote assets: %w", err)
	}

	remote := make(map[string]struct{}, len(objects))
	for _, obj := range objects {
		remote[obj.Key] = struct{}{}
	}

	var missing []string
	for _, a := range assets {
		if _, ok := remote[prefix+a.Name]; !ok {
			missing = append(missing, a.Name)
		}
	}
	return missing, nil
}
