package evalbuilder

import (
	"fmt"

	material "github.com/ChizhovVadim/CounterCheckers/pkg/eval/material"
	positional "github.com/ChizhovVadim/CounterCheckers/pkg/eval/positional"
	samuel "github.com/ChizhovVadim/CounterCheckers/pkg/eval/samuel"
)

func Get(key string) (func() interface{}, error) {
	switch key {
	case "", "v1", "material":
		return func() interface{} { return material.NewEvaluationService() }, nil
	case "v2", "positional":
		return func() interface{} { return positional.NewEvaluationService() }, nil
	case "v3", "samuel":
		return func() interface{} { return samuel.NewEvaluationService() }, nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
