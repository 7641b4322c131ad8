// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	ptrVFkUΔ0Aa7j2ileLIUolgCwΞΞ   = ord.NewPtrSer[EmotionAnalysis](EmotionAnalysisMUS)
	slicemQDsglOi44n8A8OobsyZΔQΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var StatusMUS = statusMUS{}

type statusMUS struct{}

func (s statusMUS) Marshal(v Status, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s statusMUS) Unmarshal(bs []byte) (v Status, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Status(tmp)
	return
}

func (s statusMUS) Size(v Status) (size int) {
	return varint.Int.Size(int(v))
}

func (s statusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var EmotionMUS = emotionMUS{}

type emotionMUS struct{}

func (s emotionMUS) Marshal(v Emotion, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s emotionMUS) Unmarshal(bs []byte) (v Emotion, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Emotion(tmp)
	return
}

func (s emotionMUS) Size(v Emotion) (size int) {
	return ord.String.Size(string(v))
}

func (s emotionMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var InputKindMUS = inputKindMUS{}

type inputKindMUS struct{}

func (s inputKindMUS) Marshal(v InputKind, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s inputKindMUS) Unmarshal(bs []byte) (v InputKind, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = InputKind(tmp)
	return
}

func (s inputKindMUS) Size(v InputKind) (size int) {
	return ord.String.Size(string(v))
}

func (s inputKindMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var EmotionAnalysisMUS = emotionAnalysisMUS{}

type emotionAnalysisMUS struct{}

func (s emotionAnalysisMUS) Marshal(v EmotionAnalysis, bs []byte) (n int) {
	n = EmotionMUS.Marshal(v.Emotion, bs)
	n += varint.Float64.Marshal(v.Confidence, bs[n:])
	n += varint.Float64.Marshal(v.SentimentScore, bs[n:])
	n += varint.Float64.Marshal(v.Intensity, bs[n:])
	n += slicemQDsglOi44n8A8OobsyZΔQΞΞ.Marshal(v.Keywords, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	return n + slicemQDsglOi44n8A8OobsyZΔQΞΞ.Marshal(v.Categories, bs[n:])
}

func (s emotionAnalysisMUS) Unmarshal(bs []byte) (v EmotionAnalysis, n int, err error) {
	v.Emotion, n, err = EmotionMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Confidence, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SentimentScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Intensity, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = slicemQDsglOi44n8A8OobsyZΔQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Categories, n1, err = slicemQDsglOi44n8A8OobsyZΔQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s emotionAnalysisMUS) Size(v EmotionAnalysis) (size int) {
	size = EmotionMUS.Size(v.Emotion)
	size += varint.Float64.Size(v.Confidence)
	size += varint.Float64.Size(v.SentimentScore)
	size += varint.Float64.Size(v.Intensity)
	size += slicemQDsglOi44n8A8OobsyZΔQΞΞ.Size(v.Keywords)
	size += ord.String.Size(v.Summary)
	return size + slicemQDsglOi44n8A8OobsyZΔQΞΞ.Size(v.Categories)
}

func (s emotionAnalysisMUS) Skip(bs []byte) (n int, err error) {
	n, err = EmotionMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicemQDsglOi44n8A8OobsyZΔQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicemQDsglOi44n8A8OobsyZΔQΞΞ.Skip(bs[n:])
	n += n1
	return
}

var ContentUnitMUS = contentUnitMUS{}

type contentUnitMUS struct{}

func (s contentUnitMUS) Marshal(v ContentUnit, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.OwnerId, bs[n:])
	n += ord.String.Marshal(v.Content, bs[n:])
	n += InputKindMUS.Marshal(v.Kind, bs[n:])
	n += StatusMUS.Marshal(v.Status, bs[n:])
	n += ptrVFkUΔ0Aa7j2ileLIUolgCwΞΞ.Marshal(v.Analysis, bs[n:])
	n += ord.String.Marshal(v.LastError, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.ProcessedAt, bs[n:])
}

func (s contentUnitMUS) Unmarshal(bs []byte) (v ContentUnit, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.OwnerId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Kind, n1, err = InputKindMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = StatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Analysis, n1, err = ptrVFkUΔ0Aa7j2ileLIUolgCwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LastError, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ProcessedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s contentUnitMUS) Size(v ContentUnit) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.OwnerId)
	size += ord.String.Size(v.Content)
	size += InputKindMUS.Size(v.Kind)
	size += StatusMUS.Size(v.Status)
	size += ptrVFkUΔ0Aa7j2ileLIUolgCwΞΞ.Size(v.Analysis)
	size += ord.String.Size(v.LastError)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	return size + raw.TimeUnixMicro.Size(v.ProcessedAt)
}

func (s contentUnitMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = InputKindMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = StatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrVFkUΔ0Aa7j2ileLIUolgCwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
