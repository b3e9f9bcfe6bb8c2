package corpus

import "github.com/policytester/policytester/pkg/policy"

// Expected analyzer results per tier. The score is the midpoint of the
// severity band the tier's templates should land in; pass is whether the
// analyzer should accept the policy.
const (
	expectedCritical    = 7.4
	expectedHigh        = 5.5
	expectedMedium      = 4.8
	expectedLow         = 3.1
	expectedEdgeCross   = 3.1
	expectedEdgeComplex = 0.8
)

// Template is one representative policy variant in the catalog: a tier tag,
// a stable identifier, the rendered document, and the ground-truth
// expectation for it.
type Template struct {
	ID            string
	Tier          Tier
	Document      string
	ExpectedScore float64
	ExpectedPass  bool
}

// The catalog is statically enumerated; sampling logic never constructs
// documents itself. Corpus diversity comes from template variety and
// volume, not exhaustive enumeration.
var templatesByTier = map[Tier][]Template{
	TierCritical: {
		tmpl(TierCritical, "admin-with-iam", expectedCritical, false,
			policy.New(policy.Allow(policy.Resource{"*"}, "iam:*", "s3:*", "ec2:*"))),
		tmpl(TierCritical, "full-admin", expectedCritical, false,
			policy.New(policy.Allow(policy.Resource{"*"}, "*"))),
		tmpl(TierCritical, "iam-org-admin", expectedCritical, false,
			policy.New(policy.Allow(policy.Resource{"*"}, "iam:*", "organizations:*"))),
		tmpl(TierCritical, "root-access", expectedCritical, false,
			policy.New(policy.Allow(policy.Resource{"*"}, "iam:*", "sts:*", "organizations:*"))),
	},
	TierHigh: {
		tmpl(TierHigh, "storage-wildcard", expectedHigh, false,
			policy.New(policy.Allow(policy.Resource{"*"}, "s3:*", "dynamodb:*"))),
		tmpl(TierHigh, "compute-wildcard", expectedHigh, false,
			policy.New(policy.Allow(policy.Resource{"*"}, "ec2:*", "rds:*"))),
		tmpl(TierHigh, "serverless-wildcard", expectedHigh, false,
			policy.New(policy.Allow(policy.Resource{"*"}, "lambda:*", "apigateway:*"))),
		tmpl(TierHigh, "stack-wildcard", expectedHigh, false,
			policy.New(policy.Allow(policy.Resource{"*"}, "cloudformation:*", "cloudwatch:*"))),
	},
	TierMedium: {
		tmpl(TierMedium, "bucket-readwrite", expectedMedium, true,
			policy.New(policy.Allow(policy.Resource{"arn:aws:s3:::my-bucket/*"},
				"s3:GetObject", "s3:PutObject"))),
		tmpl(TierMedium, "table-readwrite", expectedMedium, true,
			policy.New(policy.Allow(policy.Resource{"arn:aws:dynamodb:*:*:table/my-table"},
				"dynamodb:GetItem", "dynamodb:PutItem"))),
		tmpl(TierMedium, "instance-lifecycle", expectedMedium, true,
			policy.New(policy.Allow(policy.Resource{"*"},
				"ec2:DescribeInstances", "ec2:StartInstances", "ec2:StopInstances"))),
		tmpl(TierMedium, "function-invoke", expectedMedium, true,
			policy.New(policy.Allow(policy.Resource{"arn:aws:lambda:*:*:function:my-function"},
				"lambda:InvokeFunction", "lambda:GetFunction"))),
	},
	TierLow: {
		tmpl(TierLow, "single-object-read", expectedLow, true,
			policy.New(policy.Allow(policy.Resource{"arn:aws:s3:::my-bucket/specific-file.txt"},
				"s3:GetObject"))),
		tmpl(TierLow, "bucket-readonly", expectedLow, true,
			policy.New(policy.Allow(
				policy.Resource{"arn:aws:s3:::my-bucket", "arn:aws:s3:::my-bucket/readonly/*"},
				"s3:ListBucket", "s3:GetObject"))),
		tmpl(TierLow, "metrics-read", expectedLow, true,
			policy.New(policy.Allow(policy.Resource{"*"},
				"cloudwatch:GetMetricData", "cloudwatch:DescribeAlarms"))),
		tmpl(TierLow, "logs-read", expectedLow, true,
			policy.New(policy.Allow(policy.Resource{"arn:aws:logs:*:*:log-group:my-app-*"},
				"logs:DescribeLogGroups", "logs:FilterLogEvents"))),
	},
}

// EDGE splits into two sub-catalogs with different expectations:
// cross-account role assumption (low severity, should pass) and
// complex-but-narrowly-scoped statements (near-zero severity).
var edgeCrossAccount = []Template{
	tmpl(TierEdge, "cross-account-object-read", expectedEdgeCross, true,
		policy.New(policy.Allow(policy.Resource{"arn:aws:s3:::other-account-bucket/*"},
			"s3:GetObject"))),
	tmpl(TierEdge, "iam-assume-role", expectedEdgeCross, true,
		policy.New(policy.Allow(policy.Resource{"arn:aws:iam::123456789012:role/CrossAccountRole"},
			"iam:AssumeRole"))),
	tmpl(TierEdge, "sts-assume-role", expectedEdgeCross, true,
		policy.New(policy.Allow(policy.Resource{"arn:aws:iam::987654321098:role/SharedRole"},
			"sts:AssumeRole"))),
}

var edgeComplex = []Template{
	tmpl(TierEdge, "scoped-metric-read", expectedEdgeComplex, true,
		policy.New(policy.Allow(policy.Resource{"arn:aws:cloudwatch:*:*:metric/my-metric"},
			"cloudwatch:GetMetricData", "cloudwatch:DescribeAlarms"))),
	tmpl(TierEdge, "scoped-logs-read", expectedEdgeComplex, true,
		policy.New(policy.Allow(policy.Resource{"arn:aws:logs:*:*:log-group:my-app-*"},
			"logs:DescribeLogGroups", "logs:FilterLogEvents"))),
	tmpl(TierEdge, "csv-object-read", expectedEdgeComplex, true,
		policy.New(policy.Allow(policy.Resource{"arn:aws:s3:::my-bucket/data/*.csv"},
			"s3:GetObject"))),
}

// Templates returns the catalog entries for a tier. EDGE returns both
// sub-catalogs concatenated.
func Templates(tier Tier) []Template {
	if tier == TierEdge {
		out := make([]Template, 0, len(edgeCrossAccount)+len(edgeComplex))
		out = append(out, edgeCrossAccount...)
		return append(out, edgeComplex...)
	}
	return templatesByTier[tier]
}

func tmpl(tier Tier, id string, score float64, pass bool, doc policy.Document) Template {
	return Template{
		ID:            id,
		Tier:          tier,
		Document:      mustRender(doc),
		ExpectedScore: score,
		ExpectedPass:  pass,
	}
}

// mustRender is safe on the static catalog: these documents marshal
// unconditionally.
func mustRender(doc policy.Document) string {
	s, err := doc.Render()
	if err != nil {
		panic("corpus: unrenderable catalog template: " + err.Error())
	}
	return s
}
