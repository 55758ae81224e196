package db

import (
	"beneficiary_registry/internal/domain" // Importing domain models

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // ON CONFLICT support
)

// Seed inserts the default users, employees and reference lists. Every
// insert runs with ON CONFLICT DO NOTHING against the unique name columns,
// so re-running on an existing database never duplicates rows.
func Seed(db *gorm.DB) error {
	users := []domain.User{
		{Username: "admin", Password: "1234", Role: domain.RoleAdmin},
		{Username: "entry", Password: "1234", Role: domain.RoleEmployee},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error; err != nil {
		return err
	}

	departments := []domain.Department{
		{Name: "الدائرة الأولى"}, {Name: "الدائرة الثانية"}, {Name: "الدائرة الثالثة"},
		{Name: "الدائرة الرابعة"}, {Name: "الدائرة الخامسة"}, {Name: "الدائرة السادسة"},
		{Name: "الدائرة السابعة"}, {Name: "دائرة الأحداث"}, {Name: "غير مقيد"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&departments).Error; err != nil {
		return err
	}

	capacities := []domain.Capacity{
		{Name: "أصيل مدعي"}, {Name: "أصيل مدعى عليه"}, {Name: "وكيل مدعي"},
		{Name: "وكيل مدعى عليه"}, {Name: "محامي"}, {Name: "شاهد"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&capacities).Error; err != nil {
		return err
	}

	descriptions := []domain.Description{
		{Name: "طلب الاطلاع على ملف القضية"},
		{Name: "تقديم شكوى لمكتب فضيلة رئيس المحكمة"},
		{Name: "طلب صورة من صك الحكم (غير مرفق في المنصة التقنية)"},
		{Name: "الاستعلام عن (رقم القضية/ رقم الصك) بالحق العام لرفع الحق الخاص"},
		{Name: "الاستعلام عن رقم معاملة صادرة"},
		{Name: "الاستعلام عن موعد الجلسة (لا تظهر في المنصة التقنية)"},
		{Name: "الاستعلام عن معاملة محالة من النيابة العامة"},
		{Name: "تسليم بينة (مقطع مرئي/ صوتي - صور)"},
		{Name: "طلب تعديل حالة القضية إلى (قيد النظر) للتمكن من تقديم الطلبات عبر المنصة التقنية"},
		{Name: "طلب حضور جلسة لعدم وجود حساب (أبشر)"},
		{Name: "طلب رابط حضور جلسة مرئية ( شاهد عام )"},
		{Name: "طلب اعتماد صك الحكم ( تجاوز مدة الاعتماد )"},
		{Name: "الاستعلام عن حالة تبليغ الحكم"},
		{Name: "طلب رفع قرارات ( التبليغ بالمراجعة / أمر قبض )"},
		{Name: "طلب حضور جلسة ( موقوف في مراكز الشرط )"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&descriptions).Error; err != nil {
		return err
	}

	employees := []domain.Employee{
		{Name: "علي الغامدي", Password: domain.DefaultEmployeePassword},
		{Name: "محمد الثبيتي", Password: domain.DefaultEmployeePassword},
		{Name: "فيصل الجهني", Password: domain.DefaultEmployeePassword},
		{Name: "متعب الصاعدي", Password: domain.DefaultEmployeePassword},
		{Name: "أكرم الصبحي", Password: domain.DefaultEmployeePassword},
		{Name: "حميد السلمي", Password: domain.DefaultEmployeePassword},
		{Name: "هتان المطيري", Password: domain.DefaultEmployeePassword},
		{Name: "فهاد عسيري", Password: domain.DefaultEmployeePassword},
		{Name: "خالد عريبي", Password: domain.DefaultEmployeePassword},
		{Name: "مانع السلمي", Password: domain.DefaultEmployeePassword},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&employees).Error
}
