package catalog

// Default returns the built-in career table. All keywords are lowercase and
// free of punctuation so they match normalized CV text directly.
func Default() *Catalog {
	return New([]Profile{
		{
			Title:       "Yazılım Geliştirici",
			Core:        []string{"python", "java", "javascript", "typescript", "c#", ".net", "go", "php", "sql", "c++"},
			Support:     []string{"react", "node", "git", "docker", "aws", "kubernates", "html", "css", "mongodb", "postgresql", "mysql", "redis", "linux", "agile", "scrum", "rest api"},
			Soft:        []string{"problem çözme", "analitik düşünme", "takım çalışması", "sürekli öğrenme"},
			Description: "Yazılım sistemleri tasarlar, geliştirir ve bakımını yapar. Kod kalitesine ve mimariye odaklanır.",
		},
		{
			Title:       "Veri Analisti / Bilimci",
			Core:        []string{"python", "sql", "r", "istatistik", "matematik"},
			Support:     []string{"excel", "pandas", "numpy", "tableau", "power bi", "looker", "matplotlib", "seaborn", "big data", "hadoop", "spark", "etl", "veri temizleme"},
			Soft:        []string{"analitik düşünme", "merak", "iletişim", "sunum", "stoytelling"},
			Description: "Verilerden anlamlı içgörüler çıkarır, görselleştirir ve karar süreçlerini destekler.",
		},
		{
			Title:       "Dijital Pazarlama Uzmanı",
			Core:        []string{"seo", "sem", "google ads", "facebook ads", "sosyal medya yönetimi", "dijital pazarlama"},
			Support:     []string{"analytics", "google analytics", "email marketing", "crm", "hubspot", "copywriting", "içerik üretimi", "canva", "photoshop", "video kurgu"},
			Soft:        []string{"yaratıcılık", "iletişim", "trend takibi", "analiz"},
			Description: "Dijital kanalları kullanarak markaların görünürlüğünü artırır, kampanyalar yönetir.",
		},
		{
			Title:       "Proje Yöneticisi",
			Core:        []string{"proje yönetimi", "planlama", "bütçe yönetimi", "risk yönetimi"},
			Support:     []string{"scrum", "agile", "kanban", "waterfall", "jira", "trello", "asana", "ms project", "koordinasyon", "paydaş yönetimi"},
			Soft:        []string{"liderlik", "iletişim", "zaman yönetimi", "kriz yönetimi", "müzakere"},
			Description: "Projelerin zamanında, bütçe dahilinde ve hedeflere uygun tamamlanmasını sağlar.",
		},
		{
			Title:       "Satış / Müşteri Temsilcisi",
			Core:        []string{"satış", "ikna", "müşteri ilişkileri", "pazarlama"},
			Support:     []string{"crm", "salesforce", "teklif hazırlama", "sözleşme", "b2b", "b2c", "cold calling", "sunum", "raporlama"},
			Soft:        []string{"iletişim", "ikna kabiliyeti", "dayanıklılık", "hedef odaklılık", "dinleme"},
			Description: "Ürün veya hizmetlerin satışını gerçekleştirir, müşteri portföyünü yönetir.",
		},
		{
			Title:       "Muhasebe / Finans",
			Core:        []string{"muhasebe", "finans", "genel muhasebe", "vergi", "maliyet muhasebesi"},
			Support:     []string{"excel", "ileri excel", "logo", "netsis", "sap", "mikro", "zirve", "fatura", "bordro", "sgk", "beyanname", "denetim"},
			Soft:        []string{"dikkat", "dürüstlük", "analitik", "düzen", "sorumluluk"},
			Description: "Mali kayıtları tutar, raporlar ve yasal süreçleri takip eder.",
		},
	})
}
