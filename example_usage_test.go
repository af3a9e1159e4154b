package autoparse_test

import (
	"fmt"
	"strings"

	autoparse "github.com/ndtaylor/autoparse-xml"
)

func Example() {
	settings, err := autoparse.NewSettingsBuilder().
		WithPartitionLookup(autoparse.MapLookup{
			"models": autoparse.ParserMap{},
		}).
		WithPartitions("models").
		WithUnknownElementHandling(autoparse.IgnoreUnknown).
		AddFilter(strings.TrimSpace).
		AddFilter(func(s string) string { return strings.ReplaceAll(s, "&#xa;", "\n") }).
		Build()
	if err != nil {
		fmt.Println("invalid configuration:", err)
		return
	}
	fmt.Println(settings.UnknownElementHandling())
	fmt.Println(settings.ApplyFilters("  first&#xa;second  "))
	// Output:
	// ignore
	// first
	// second
}
