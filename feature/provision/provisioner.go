package provision

import (
	"context"
	"strings"
	"time"

	"bucket-provisioner/core/metrics"
	"bucket-provisioner/core/policy"
	"bucket-provisioner/core/storage"

	"github.com/fishy/errbatch"
	"go.uber.org/zap"
)

// Provisioner ensures the bucket, its access rules, the uploaded assets and
// the generated helper, one step after the other.
type Provisioner struct {
	store    storage.Client
	policies policy.Client
	opts     Options
	logger   *zap.Logger
	metrics  *metrics.Recorder
}

// New creates a Provisioner. A nil recorder gets a private one.
func New(store storage.Client, policies policy.Client, opts Options, logger *zap.Logger, rec *metrics.Recorder) *Provisioner {
	if rec == nil {
		rec = metrics.New()
	}
	return &Provisioner{
		store:    store,
		policies: policies,
		opts:     opts,
		logger:   logger,
		metrics:  rec,
	}
}

// Report summarises one run.
type Report struct {
	BucketCreated bool
	Rules         RuleSummary
	Uploads       UploadSummary
	HelperPath    string
}

// Err compiles the non-fatal errors of the run; nil when there were none.
func (r *Report) Err() error {
	var batch errbatch.ErrBatch
	for _, err := range r.Rules.Errors {
		batch.Add(err)
	}
	for _, err := range r.Uploads.Errors {
		batch.Add(err)
	}
	return batch.Compile()
}

// Run executes the whole pipeline. Only bucket and helper failures are
// returned; rule and upload failures are logged and kept in the report.
func (p *Provisioner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	p.logger.Info("Provisioning started",
		zap.String("bucket", p.opts.Bucket.Name),
		zap.String("assets", p.opts.Assets.Dir),
	)

	created, err := p.EnsureBucket(ctx)
	if err != nil {
		return report, err
	}
	report.BucketCreated = created

	report.Rules = p.EnsureAccessRules(ctx)
	report.Uploads = p.UploadAssets(ctx)

	path, err := p.WriteHelper()
	if err != nil {
		return report, err
	}
	report.HelperPath = path

	p.metrics.Succeeded(time.Now())

	p.logger.Info("Provisioning finished",
		zap.Bool("bucket_created", report.BucketCreated),
		zap.Int("rules_created", report.Rules.Created),
		zap.Int("rules_existing", report.Rules.Existing),
		zap.Int("rules_failed", report.Rules.Failed),
		zap.Int("uploaded", len(report.Uploads.Uploaded)),
		zap.Int("upload_failed", len(report.Uploads.Failed)),
		zap.Int("skipped", len(report.Uploads.Skipped)),
		zap.String("helper", report.HelperPath),
	)
	if err := report.Err(); err != nil {
		p.logger.Warn("Provisioning finished with errors", zap.Error(err))
	}

	return report, nil
}

// PublicURL returns the public retrieval URL of the named asset.
func (p *Provisioner) PublicURL(name string) string {
	return PublicURL(p.opts.BaseURL, p.opts.Bucket.Name, p.opts.Bucket.PathPrefix, name)
}

// PublicURL builds <base>/storage/v1/object/public/<bucket>/<prefix><name>.
func PublicURL(baseURL, bucket, prefix, name string) string {
	return strings.TrimRight(baseURL, "/") + "/storage/v1/object/public/" + bucket + "/" + prefix + name
}
