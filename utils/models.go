package utils

// ModelKind decides which inference path a summarization model takes.
type ModelKind string

const (
	ModelKindSeq2Seq ModelKind = "seq2seq"
	ModelKindCausal  ModelKind = "causal"
)

const (
	SummaryMaxLength = 500
	SummaryMinLength = 100
)

type SummaryModel struct {
	Key  string
	ID   string
	Kind ModelKind
}

// SummaryModels is listed to the operator in this order.
var SummaryModels = []SummaryModel{
	{Key: "mistral", ID: "mistralai/Mistral-7B-Instruct-v0.3", Kind: ModelKindCausal},
	{Key: "flan-t5", ID: "google/flan-t5-large", Kind: ModelKindSeq2Seq},
	{Key: "bart", ID: "facebook/bart-large-cnn", Kind: ModelKindSeq2Seq},
}

// DownloadableModel is a hub repository mirrored under the models directory.
type DownloadableModel struct {
	Key    string
	RepoID string
	Dir    string
}

var DownloadableModels = []DownloadableModel{
	{Key: "mistral-7b", RepoID: "mistralai/Mistral-7B-Instruct-v0.3", Dir: "mistral-7b"},
	{Key: "flan-t5", RepoID: "google/flan-t5-large", Dir: "flan-t5-large"},
	{Key: "bart", RepoID: "facebook/bart-large-cnn", Dir: "bart-large-cnn"},
}

func summaryModelKeys() []string {
	keys := make([]string, len(SummaryModels))
	for i, model := range SummaryModels {
		keys[i] = model.Key
	}
	return keys
}

func downloadableModelKeys() []string {
	keys := make([]string, len(DownloadableModels))
	for i, model := range DownloadableModels {
		keys[i] = model.Key
	}
	return keys
}
