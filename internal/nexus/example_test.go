package nexus_test

import (
	"fmt"

	"taxengine/internal/catalog"
	"taxengine/internal/nexus"
)

func ExampleEvaluator_LookupRule() {
	e, err := nexus.NewEvaluator(catalog.NexusRules(), catalog.DefaultNexusRule())
	if err != nil {
		panic(err)
	}

	for _, code := range []string{"NY", "OR"} {
		r := e.LookupRule(code)
		fmt.Println(code, r.RevenueThreshold.StringFixed(0), r.TransactionThreshold, r.Fallback)
	}

	// Output:
	// NY 500000 100 false
	// OR 100000 200 true
}
