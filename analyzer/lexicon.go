package analyzer

import "review-insight/models"

// aspectRule holds the stems used to score one aspect of a review. Matching is
// case-insensitive substring search; the positive group is tried first.
type aspectRule struct {
	name     models.AspectName
	title    string
	positive []string
	negative []string
}

// aspectRules is ordered the way aspects are listed in the rationale.
var aspectRules = []aspectRule{
	{
		name:     models.AspectQuality,
		title:    "kualitas produk",
		positive: []string{"bagus", "keren", "nyaman", "awet", "tahan", "mantap", "berkualitas", "premium", "halus", "lembut", "enak"},
		negative: []string{"jelek", "buruk", "rusak", "cacat", "sobek", "luntur", "tipis", "pudar", "kusut", "kasar", "tidak nyaman"},
	},
	{
		name:     models.AspectPrice,
		title:    "harga",
		positive: []string{"murah", "terjangkau", "worth", "sepadan", "ekonomis", "hemat", "value", "diskon", "promo"},
		negative: []string{"mahal", "kemahalan", "tidak worth", "tidak sepadan", "overprice", "overpriced", "tidak sebanding"},
	},
	{
		name:     models.AspectShipping,
		title:    "pengiriman",
		// no bare "pengiriman": the aspect name carries no polarity
		positive: []string{"cepat", "tepat waktu", "sesuai jadwal", "aman", "rapi", "utuh", "tidak rusak"},
		negative: []string{"lambat", "telat", "terlambat", "lama", "rusak", "bocor", "penyok", "tidak sesuai", "salah alamat"},
	},
	{
		name:     models.AspectService,
		title:    "pelayanan",
		positive: []string{"ramah", "responsif", "cepat", "membantu", "informatif", "profesional", "baik", "memuaskan", "service"},
		// bare "lambat" is shipping vocabulary
		negative: []string{"jutek", "lambat respon", "slow respon", "tidak responsif", "mengabaikan", "kasar", "tidak profesional", "tidak membantu", "mengecewakan"},
	},
}

// KeywordLexicon is the word list used when counting popular keywords.
type KeywordLexicon struct {
	Positive []string
	Negative []string
}

// DefaultKeywordLexicon returns the Indonesian marketplace vocabulary.
func DefaultKeywordLexicon() KeywordLexicon {
	return KeywordLexicon{
		Positive: []string{
			"bagus", "pas", "sesuai", "pengiriman", "nyaman", "cepat", "banget",
			"oke", "baik", "sampai", "adem", "mantap", "aman", "sangat",
			"ok", "lumayan", "keren", "rapi", "packing", "tebal", "cukup",
			"halus", "cocok", "puas", "berkualitas", "langganan", "suka",
			"diterima", "rapih", "original", "lembut", "enak", "ori", "joss",
			"mantab", "tepat", "datang", "selamat", "terbaik", "terjamin", "cakep",
			"bersahabat", "murah", "okelah", "good", "recommended", "memuaskan",
			"ganteng", "baguss", "bener", "gercep", "kilat", "terjangkau", "worth",
		},
		Negative: []string{
			"jelek", "buruk", "rusak", "kecewa", "tidak", "nggak", "ga", "gak",
			"kurang", "bau", "mahal", "sampah", "cacat", "gembel", "bocor", "busuk",
			"kw", "palsu", "bohong", "robek", "sobek", "titik", "noda", "kotor",
			"lamban", "lambat", "cot", "telat", "molor", "belum", "pusing",
			"ribet", "ngga", "salah", "gagal", "ditunggu", "abal",
			"dicuci luntur", "ditipu", "kebesaran", "kekecilan", "sempit", "longgar",
		},
	}
}

// fallbackKeywords keeps the dashboard populated when nothing was counted.
var fallbackKeywords = []KeywordStat{
	{Name: "bagus", Value: 150, Sentiment: models.LabelPositive},
	{Name: "cepat", Value: 120, Sentiment: models.LabelPositive},
	{Name: "sesuai", Value: 100, Sentiment: models.LabelPositive},
	{Name: "kecewa", Value: 80, Sentiment: models.LabelNegative},
	{Name: "lambat", Value: 70, Sentiment: models.LabelNegative},
	{Name: "murah", Value: 60, Sentiment: models.LabelPositive},
	{Name: "rusak", Value: 50, Sentiment: models.LabelNegative},
}

// FallbackKeywords returns a copy of the placeholder keyword list.
func FallbackKeywords() []KeywordStat {
	out := make([]KeywordStat, len(fallbackKeywords))
	copy(out, fallbackKeywords)
	return out
}

type issueRule struct {
	aspect         string
	substrings     []string
	recommendation string
}

// issueRules is the complaint taxonomy for negative reviews. Order breaks ties.
var issueRules = []issueRule{
	{
		aspect:         "harga",
		substrings:     []string{"harga", "mahal"},
		recommendation: "Evaluasi strategi harga atau berikan penawaran khusus untuk meningkatkan persepsi nilai.",
	},
	{
		aspect:         "kualitas",
		substrings:     []string{"kualitas", "buruk", "jelek"},
		recommendation: "Tingkatkan standar kualitas produk dan lakukan quality control yang lebih ketat.",
	},
	{
		aspect:         "pengiriman",
		substrings:     []string{"kirim", "lama", "paket"},
		recommendation: "Perbaiki proses pengiriman dan komunikasi status pengiriman kepada pelanggan.",
	},
	{
		aspect:         "pelayanan",
		substrings:     []string{"layanan", "respon", "cs"},
		recommendation: "Tingkatkan pelatihan customer service dan waktu respons terhadap keluhan pelanggan.",
	},
	{
		aspect:         "ukuran",
		substrings:     []string{"ukuran", "size", "kecil", "besar"},
		recommendation: "Berikan informasi ukuran yang lebih detail dan akurat pada deskripsi produk.",
	},
	{
		aspect:         "warna",
		substrings:     []string{"warna", "color", "pudar", "beda"},
		recommendation: "Pastikan foto produk menampilkan warna yang akurat dan sesuai dengan produk aktual.",
	},
	{
		aspect:         "bahan",
		substrings:     []string{"bahan", "kain", "material", "kusut"},
		recommendation: "Tingkatkan kualitas bahan produk dan berikan informasi perawatan yang jelas.",
	},
}

const noIssueRecommendation = "Pertahankan kualitas produk dan layanan saat ini, sambil terus memantau umpan balik pelanggan."
