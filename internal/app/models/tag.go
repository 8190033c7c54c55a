package models

// Tag is one entry of a curated tag catalog (language or specialization),
// keyed by a fixed enumerated name with a human-readable display name.
type Tag struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// SpecializationCommonCore is the specialization auto-assigned at ingestion
// time to projects whose slug matches the curated common-core slug list.
const SpecializationCommonCore = "common_core"

// LanguageCatalog is the seeded language tag set, from the curated
// choice list.
var LanguageCatalog = []Tag{
	{Name: "c", DisplayName: "C"},
	{Name: "cpp", DisplayName: "C++"},
	{Name: "python", DisplayName: "Python"},
	{Name: "ocaml", DisplayName: "OCaml"},
	{Name: "java", DisplayName: "Java"},
	{Name: "compiled_languages", DisplayName: "Compiled Languages"},
	{Name: "shell", DisplayName: "Shell"},
	{Name: "php", DisplayName: "PHP"},
	{Name: "csharp", DisplayName: "C#"},
	{Name: "kotlin", DisplayName: "Kotlin"},
	{Name: "swift", DisplayName: "Swift"},
	{Name: "dart", DisplayName: "Dart"},
	{Name: "zig", DisplayName: "Zig"},
	{Name: "go", DisplayName: "Go"},
	{Name: "assembly", DisplayName: "Assembly"},
	{Name: "rust", DisplayName: "Rust"},
	{Name: "undefined", DisplayName: "Undefined"},
}

// SpecializationCatalog is the seeded specialization tag set.
var SpecializationCatalog = []Tag{
	{Name: SpecializationCommonCore, DisplayName: "Common Core"},
	{Name: "algo_ai_data", DisplayName: "Algo & AI & Data"},
	{Name: "security", DisplayName: "Security"},
	{Name: "devops", DisplayName: "Devops"},
	{Name: "web_mobile", DisplayName: "Web & Mobile"},
	{Name: "system_kernel", DisplayName: "System & Kernel"},
	{Name: "graphics_gaming", DisplayName: "Graphics & Gaming"},
	{Name: "crypto_maths", DisplayName: "Cryptography & Maths"},
	{Name: "development", DisplayName: "Development"},
	{Name: "professional_exp", DisplayName: "Professional Experience"},
}
