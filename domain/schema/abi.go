package schema

// A light annotation layer over raw contract ABIs. Each function input and
// output is tagged with its semantic role so generic calldata building can
// parameterize a call without hardcoding per-contract logic.

type AbiType string

const (
	AbiTypeFunction    AbiType = "function"
	AbiTypeEvent       AbiType = "event"
	AbiTypeConstructor AbiType = "constructor"
	AbiTypeFallback    AbiType = "fallback"
)

type StateMutability string

const (
	StateMutabilityPure       StateMutability = "pure"
	StateMutabilityView       StateMutability = "view"
	StateMutabilityPayable    StateMutability = "payable"
	StateMutabilityNonpayable StateMutability = "nonpayable"
)

func (m StateMutability) IsReadOnly() bool {
	return m == StateMutabilityPure || m == StateMutabilityView
}

// FunctionInputKind tags which argument is "the asset", "the owner", "the
// index" and so on
type FunctionInputKind string

const (
	InputKindAsset       FunctionInputKind = "asset"
	InputKindReplaceable FunctionInputKind = "replaceable"
	InputKindStaticCall  FunctionInputKind = "staticCall"
	InputKindOwner       FunctionInputKind = "owner"
	InputKindIndex       FunctionInputKind = "index"
	InputKindCount       FunctionInputKind = "count"
	InputKindData        FunctionInputKind = "data"
)

type FunctionOutputKind string

const (
	OutputKindOwner FunctionOutputKind = "owner"
	OutputKindAsset FunctionOutputKind = "asset"
	OutputKindCount FunctionOutputKind = "count"
	OutputKindOther FunctionOutputKind = "other"
)

type AnnotatedFunctionInput struct {
	Name  string            `json:"name"`
	Type  string            `json:"type"`
	Kind  FunctionInputKind `json:"kind"`
	Value interface{}       `json:"value,omitempty"`
}

type AnnotatedFunctionOutput struct {
	Name string             `json:"name"`
	Type string             `json:"type"`
	Kind FunctionOutputKind `json:"kind"`
}

type AnnotatedFunctionABI struct {
	Type            AbiType                   `json:"type"`
	Name            string                    `json:"name"`
	Target          string                    `json:"target"`
	Inputs          []AnnotatedFunctionInput  `json:"inputs"`
	Outputs         []AnnotatedFunctionOutput `json:"outputs"`
	Constant        bool                      `json:"constant"`
	StateMutability StateMutability           `json:"stateMutability"`
	Payable         bool                      `json:"payable"`
}

// ReplaceableInputs returns the positions a replacement pattern may mask when
// two orders are matched atomically
func (a *AnnotatedFunctionABI) ReplaceableInputs() []int {
	var idxs []int
	for i, in := range a.Inputs {
		if in.Kind == InputKindReplaceable {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
