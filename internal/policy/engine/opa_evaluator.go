package engine

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"
)

const (
	allowQuery   = "data.opencap.onboarding.allow"
	reasonsQuery = "data.opencap.onboarding.deny_reasons"
)

// DefaultRegoPolicy is used when no policy file is configured. It only requires
// an authenticated actor and a company name; a policy file may add date or type rules.
const DefaultRegoPolicy = `package opencap.onboarding

default allow := false

allow if {
	count(deny_reasons) == 0
}

deny_reasons contains "actor is required" if {
	input.actor.user_id == ""
}

deny_reasons contains "company name is required" if {
	input.company.name == ""
}
`

// OPAEvaluator evaluates the onboarding policy using OPA Rego. Queries are
// prepared once at construction.
type OPAEvaluator struct {
	allow   rego.PreparedEvalQuery
	reasons rego.PreparedEvalQuery
}

// NewOPAEvaluator compiles module (DefaultRegoPolicy when empty) and prepares its queries.
func NewOPAEvaluator(ctx context.Context, module string) (*OPAEvaluator, error) {
	if module == "" {
		module = DefaultRegoPolicy
	}
	compiler, err := ast.CompileModules(map[string]string{"onboarding.rego": module})
	if err != nil {
		return nil, fmt.Errorf("compile onboarding policy: %w", err)
	}
	allow, err := rego.New(rego.Query(allowQuery), rego.Compiler(compiler)).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare allow query: %w", err)
	}
	reasons, err := rego.New(rego.Query(reasonsQuery), rego.Compiler(compiler)).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare reasons query: %w", err)
	}
	return &OPAEvaluator{allow: allow, reasons: reasons}, nil
}

// NewOPAEvaluatorFromFile reads a Rego module from path; an empty path selects the default policy.
func NewOPAEvaluatorFromFile(ctx context.Context, path string) (*OPAEvaluator, error) {
	if path == "" {
		return NewOPAEvaluator(ctx, "")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	return NewOPAEvaluator(ctx, string(b))
}

// EvaluateOnboarding evaluates the policy. An undefined allow rule is a deny.
func (e *OPAEvaluator) EvaluateOnboarding(ctx context.Context, in OnboardingInput) (Decision, error) {
	input := buildInput(in)
	rs, err := e.allow.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return Decision{}, fmt.Errorf("eval onboarding policy: %w", err)
	}
	d := Decision{}
	if len(rs) > 0 && len(rs[0].Expressions) > 0 {
		d.Allow, _ = rs[0].Expressions[0].Value.(bool)
	}
	if d.Allow {
		return d, nil
	}
	rrs, err := e.reasons.Eval(ctx, rego.EvalInput(input))
	if err == nil && len(rrs) > 0 && len(rrs[0].Expressions) > 0 {
		if set, ok := rrs[0].Expressions[0].Value.([]interface{}); ok {
			for _, v := range set {
				if s, ok := v.(string); ok {
					d.Reasons = append(d.Reasons, s)
				}
			}
			sort.Strings(d.Reasons)
		}
	}
	return d, nil
}

// HealthCheck evaluates the prepared policy against a minimal input.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	rs, err := e.allow.Eval(ctx, rego.EvalInput(buildInput(OnboardingInput{})))
	if err != nil {
		return fmt.Errorf("eval onboarding policy: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return fmt.Errorf("policy query returned no result")
	}
	return nil
}

func buildInput(in OnboardingInput) map[string]interface{} {
	date := ""
	if !in.IncorporationDate.IsZero() {
		date = in.IncorporationDate.UTC().Format(time.RFC3339)
	}
	return map[string]interface{}{
		"actor": map[string]interface{}{
			"user_id":    in.ActorUserID,
			"session_id": in.ActorSessionID,
		},
		"company": map[string]interface{}{
			"name":                  in.CompanyName,
			"incorporation_type":    in.IncorporationType,
			"incorporation_date":    date,
			"incorporation_country": in.IncorporationCountry,
		},
	}
}
