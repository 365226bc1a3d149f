package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// LanguageStyle is the rhetorical style requested for the script body.
type LanguageStyle string

// HookType is the attention-grabbing opening device for the script.
type HookType string

// CTAType is the closing call-to-action intent for the script.
type CTAType string

const (
	StylePersuasif          LanguageStyle = "persuasif"
	StyleProfesional        LanguageStyle = "profesional"
	StyleEdukatif           LanguageStyle = "edukatif"
	StyleSantai             LanguageStyle = "santai"
	StyleFun                LanguageStyle = "fun/menghibur"
	StyleSatuKalimat        LanguageStyle = "1-kalimat"
	StyleListicle           LanguageStyle = "listicle"
	StyleHowTo              LanguageStyle = "how-to"
	StyleCurhatan           LanguageStyle = "curhatan"
	StyleStoryselling       LanguageStyle = "storyselling"
	StyleStorytellingRelate LanguageStyle = "storytelling relate"
	StyleStorytellingHalus  LanguageStyle = "storytelling halus"
	StylePAS                LanguageStyle = "problem-agitation-solution"
)

const (
	HookTidakAda        HookType = "tidak ada"
	HookKontroversial   HookType = "kontroversial"
	HookPertanyaan      HookType = "pertanyaan retoris"
	HookKutipan         HookType = "kutipan relatable"
	HookFakta           HookType = "fakta mengejutkan"
	HookMasalahSolusi   HookType = "masalah dan solusi"
	HookBeforeAfter     HookType = "before after"
	HookPerbandingan    HookType = "X dibanding Y"
	HookTestimoni       HookType = "testimoni/review"
	HookFirstImpression HookType = "first impression/unboxing"
)

const (
	CTAInteraksi    CTAType = "interaksi"
	CTAShareSave    CTAType = "share/save"
	CTAKlikLink     CTAType = "klik link"
	CTABeliCheckout CTAType = "beli/checkout"
	CTACobaGratis   CTAType = "coba gratis/demo"
	CTAEdukasi      CTAType = "edukasi/follow up"
	CTAValidasiDiri CTAType = "validasi diri"
	// CTAMarketplace asks the generator to infer the source marketplace from
	// the product link's domain and pick a fitting CTA category itself.
	CTAMarketplace CTAType = "random sesuai marketplace"
)

var languageStyles = map[LanguageStyle]struct{}{
	StylePersuasif: {}, StyleProfesional: {}, StyleEdukatif: {}, StyleSantai: {},
	StyleFun: {}, StyleSatuKalimat: {}, StyleListicle: {}, StyleHowTo: {},
	StyleCurhatan: {}, StyleStoryselling: {}, StyleStorytellingRelate: {},
	StyleStorytellingHalus: {}, StylePAS: {},
}

var hookTypes = map[HookType]struct{}{
	HookTidakAda: {}, HookKontroversial: {}, HookPertanyaan: {}, HookKutipan: {},
	HookFakta: {}, HookMasalahSolusi: {}, HookBeforeAfter: {},
	HookPerbandingan: {}, HookTestimoni: {}, HookFirstImpression: {},
}

var ctaTypes = map[CTAType]struct{}{
	CTAInteraksi: {}, CTAShareSave: {}, CTAKlikLink: {}, CTABeliCheckout: {},
	CTACobaGratis: {}, CTAEdukasi: {}, CTAValidasiDiri: {}, CTAMarketplace: {},
}

func (s LanguageStyle) Valid() bool { _, ok := languageStyles[s]; return ok }
func (h HookType) Valid() bool      { _, ok := hookTypes[h]; return ok }
func (c CTAType) Valid() bool       { _, ok := ctaTypes[c]; return ok }

const (
	MinScriptLength = 0
	MaxScriptLength = 60
	MinOutputCount  = 1
	MaxOutputCount  = 15
)

// GenerationRequest carries one submission of the preference form. It is
// created fresh per submission and never persisted.
type GenerationRequest struct {
	ProductLink   string        `json:"productLink"`
	LanguageStyle LanguageStyle `json:"languageStyle"`
	HookType      HookType      `json:"hookType"`
	CTAType       CTAType       `json:"ctaType"`
	ScriptLength  int           `json:"scriptLength"`
	OutputCount   int           `json:"outputCount"`
}

// ScriptOption is one complete generated variant. Field names follow the
// output contract shared with the provider.
type ScriptOption struct {
	Durasi   string `json:"durasi"`
	Judul    string `json:"judul"`
	Hook     string `json:"hook"`
	Script   string `json:"script"`
	CTA      string `json:"cta"`
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
}

// GenerationResult is the ordered set of options returned for one request.
type GenerationResult struct {
	ScriptOptions []ScriptOption `json:"scriptOptions"`
}

// Validate checks every field of the request against its vocabulary or
// bounds and reports all violations at once. A request that fails here must
// never reach a provider.
func (r GenerationRequest) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(r.ProductLink) == "" {
		verr.add("productLink", "link produk tidak boleh kosong")
	} else if !validProductURL(r.ProductLink) {
		verr.add("productLink", "harap masukkan URL produk yang valid")
	}
	if !r.LanguageStyle.Valid() {
		verr.add("languageStyle", fmt.Sprintf("gaya bahasa %q tidak dikenal", string(r.LanguageStyle)))
	}
	if !r.HookType.Valid() {
		verr.add("hookType", fmt.Sprintf("jenis hook %q tidak dikenal", string(r.HookType)))
	}
	if !r.CTAType.Valid() {
		verr.add("ctaType", fmt.Sprintf("jenis CTA %q tidak dikenal", string(r.CTAType)))
	}
	if r.ScriptLength < MinScriptLength || r.ScriptLength > MaxScriptLength {
		verr.add("scriptLength", fmt.Sprintf("durasi harus antara %d dan %d detik", MinScriptLength, MaxScriptLength))
	}
	if r.OutputCount < MinOutputCount || r.OutputCount > MaxOutputCount {
		verr.add("outputCount", fmt.Sprintf("jumlah opsi harus antara %d dan %d", MinOutputCount, MaxOutputCount))
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func validProductURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
