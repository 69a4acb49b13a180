package repository

import (
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// setBuilder accumulates "SET #a = :a, ..." clauses for UpdateItem.
type setBuilder struct {
	clauses []string
	values  map[string]types.AttributeValue
	names   map[string]string
}

func newSetBuilder() *setBuilder {
	return &setBuilder{
		values: make(map[string]types.AttributeValue),
		names:  make(map[string]string),
	}
}

func (b *setBuilder) add(attr string, v types.AttributeValue) {
	b.clauses = append(b.clauses, "#"+attr+" = :"+attr)
	b.values[":"+attr] = v
	b.names["#"+attr] = attr
}

func (b *setBuilder) str(attr, v string) {
	b.add(attr, &types.AttributeValueMemberS{Value: v})
}

func (b *setBuilder) num(attr, v string) {
	b.add(attr, &types.AttributeValueMemberN{Value: v})
}

func (b *setBuilder) expr() string {
	return "SET " + strings.Join(b.clauses, ", ")
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
