package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// defaultServices are the four offerings the site launched with. They are
// inserted only when the services table is empty so a fresh development
// database renders a complete services page.
var defaultServices = []struct {
	id, title, subtitle, description, valueProp, icon, color, accent string
	order                                                            int
}{
	{
		id:          "1",
		title:       "مهارة التحليل الفني",
		subtitle:    "بناء المسار المهني",
		description: "أقدّم لك مهارة التحليل الفني من أساسها الصحيح، لتصبح قادرًا على قراءة السوق والفرص بنفسك، وبناء قراراتك بوضوح، بعيدًا عن الإزعاج وتضارب الآراء الخارجية.",
		valueProp:   "امتلاك أداة فكرية ومهارية يمكنك البناء عليها كمسار طويل المدى في الأسواق المالية.",
		icon:        "📈",
		color:       "from-blue-500/20 to-cyan-500/20",
		accent:      "blue-500",
		order:       1,
	},
	{
		id:          "2",
		title:       "منهجية تأهيل تاجر المعادن",
		subtitle:    "نهج متكامل ومتخصص",
		description: "أعمل على نقل خبرتي العملية في أسواق المعادن، وتحويلها إلى منهجية متكاملة لتأهيلك كتاجر معادن، من فهم حركة أسعار المعادن، وإدارة المخاطر، وصولًا إلى كيفية اتخاذ القرار بثبات وهدوء.",
		valueProp:   "منهج واضح ومتكامل، لا يحتاج بعده إلى تعدد أساليب أو مصادر، بل يركّز على التطبيق الواعي والاستمرارية.",
		icon:        "🥇",
		color:       "from-amber-500/20 to-yellow-500/20",
		accent:      "amber-500",
		order:       2,
	},
	{
		id:          "3",
		title:       "التوجيه والمتابعة المباشرة",
		subtitle:    "حتى الوصول للهدف",
		description: "أقدّم حصص تقوية مباشرة تُبنى على احتياجك الفعلي، نُعالج فيها نقاط الضعف، ونُعزّز الجوانب التي تحتاجها في مرحلتك الحالية، مع إمكانية المتابعة المباشرة بعد الجلسات حتى الوصول إلى هدفك.",
		valueProp:   "أنت لا تُترك بعد الجلسة، بل تُوجَّه حتى يتحقق الفهم والتطبيق العملي.",
		icon:        "🎯",
		color:       "from-green-500/20 to-emerald-500/20",
		accent:      "green-500",
		order:       3,
	},
	{
		id:          "4",
		title:       "شراكة واعية مع المستثمر",
		subtitle:    "عقلية استثمارية مستدامة",
		description: "للمستثمرين، أقدّم متابعة مباشرة مبنية على شرح مبسّط لما يقدّمه السوق من أدلة، وما يمكن أن يترتب عليها من سيناريوهات محتملة، بعيدًا عن ردّات الفعل والقرارات العشوائية.",
		valueProp:   "تعامل احترافي مع السوق بعقلية استثمارية هادئة ومستدامة.",
		icon:        "🤝",
		color:       "from-purple-500/20 to-indigo-500/20",
		accent:      "purple-500",
		order:       4,
	},
}

// Seed populates the database with the default service listings. It is a
// no-op when the services table already has rows.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return fmt.Errorf("seed check services: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, s := range defaultServices {
		_, err := db.Exec(`
			INSERT INTO services (id, title, subtitle, description, value_proposition,
			                      icon, color, accent_color, display_order, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
		`, s.id, s.title, s.subtitle, s.description, s.valueProp,
			s.icon, s.color, s.accent, s.order)
		if err != nil {
			return fmt.Errorf("seed insert service %s: %w", s.id, err)
		}
	}

	slog.Info("database seeded with default services", "count", len(defaultServices))
	return nil
}
