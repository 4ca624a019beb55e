package provision

import (
	"context"
	"fmt"

	"bucket-provisioner/core/metrics"
	"bucket-provisioner/core/policy"

	"go.uber.org/zap"
)

// Action is the statement kind an access rule applies to.
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionSelect Action = "SELECT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// AccessRule is one named policy on the object table.
type AccessRule struct {
	Name      string
	Action    Action
	Role      string
	Condition string
}

// AccessRules returns the four rules opening bucket to public access.
func AccessRules(bucket string) []AccessRule {
	cond := "bucket_id = " + policy.QuoteLiteral(bucket)
	return []AccessRule{
		{Name: "Public insert " + bucket, Action: ActionInsert, Role: "anon", Condition: cond},
		{Name: "Public select " + bucket, Action: ActionSelect, Role: "public", Condition: cond},
		{Name: "Public update " + bucket, Action: ActionUpdate, Role: "public", Condition: cond},
		{Name: "Public delete " + bucket, Action: ActionDelete, Role: "public", Condition: cond},
	}
}

// Statement renders the CREATE POLICY statement for schema.table.
// INSERT rules check new rows; every other action filters existing rows.
func (r AccessRule) Statement(schema, table string) string {
	clause := "USING"
	if r.Action == ActionInsert {
		clause = "WITH CHECK"
	}
	return fmt.Sprintf("CREATE POLICY %s ON %s.%s FOR %s TO %s %s (%s)",
		policy.QuoteIdent(r.Name),
		policy.QuoteIdent(schema), policy.QuoteIdent(table),
		r.Action, r.Role, clause, r.Condition,
	)
}

// RuleSummary counts access rule outcomes.
type RuleSummary struct {
	Created  int
	Existing int
	Failed   int
	Errors   []error
}

// EnsureAccessRules enables row-level security and creates every access
// rule. It never fails: duplicates count as existing and other errors are
// logged and collected while the next rule is still attempted.
func (p *Provisioner) EnsureAccessRules(ctx context.Context) RuleSummary {
	var sum RuleSummary
	bucket := p.opts.Bucket.Name

	// Best effort; a failure is only logged.
	if err := p.policies.EnableRowLevelSecurity(ctx, p.opts.Schema, p.opts.Table); err != nil {
		p.logger.Debug("Enabling row level security failed",
			zap.String("table", p.opts.Schema+"."+p.opts.Table),
			zap.Error(err),
		)
	}

	for _, rule := range AccessRules(bucket) {
		l := p.logger.With(zap.String("rule", rule.Name), zap.String("action", string(rule.Action)))

		err := p.policies.CreatePolicy(ctx, bucket, rule.Name, rule.Statement(p.opts.Schema, p.opts.Table))
		switch {
		case err == nil:
			sum.Created++
			p.metrics.Rule(metrics.ResultCreated)
			l.Info("Access rule created")
		case policy.IsAlreadyExists(err):
			sum.Existing++
			p.metrics.Rule(metrics.ResultExisting)
			l.Info("Access rule already exists")
		default:
			sum.Failed++
			sum.Errors = append(sum.Errors, err)
			p.metrics.Rule(metrics.ResultFailed)
			l.Error("Failed to create access rule", zap.Error(err))
		}
	}

	return sum
}
