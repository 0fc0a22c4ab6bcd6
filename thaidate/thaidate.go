// Package thaidate แปลงปี ค.ศ.⇄พ.ศ. และจัดรูปแบบวันที่ภาษาไทยสำหรับหน้ารายงาน
package thaidate

import (
	"fmt"
	"time"
)

const yearOffset = 543

var fullMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var shortMonths = [...]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

var weekdays = [...]string{
	"อาทิตย์", "จันทร์", "อังคาร", "พุธ", "พฤหัสบดี", "ศุกร์", "เสาร์",
}

// BuddhistYear แปลงปี ค.ศ. → พ.ศ.
func BuddhistYear(gregorian int) int { return gregorian + yearOffset }

// GregorianYear แปลงปี พ.ศ. → ค.ศ.
func GregorianYear(buddhist int) int { return buddhist - yearOffset }

// MonthName ชื่อเดือนเต็ม
func MonthName(m time.Month) string { return fullMonths[m-1] }

// MonthAbbr ชื่อเดือนย่อ
func MonthAbbr(m time.Month) string { return shortMonths[m-1] }

// WeekdayName ชื่อวัน
func WeekdayName(d time.Weekday) string { return weekdays[d] }

// FormatLong เช่น "วันจันทร์ที่ 2 มกราคม 2567"
func FormatLong(t time.Time) string {
	return fmt.Sprintf("วัน%sที่ %d %s %d",
		WeekdayName(t.Weekday()), t.Day(), MonthName(t.Month()), BuddhistYear(t.Year()))
}

// FormatShort เช่น "2 ม.ค. 2567"
func FormatShort(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), MonthAbbr(t.Month()), BuddhistYear(t.Year()))
}

// AcademicYear ปีการศึกษา (พ.ศ.) — ภาคเรียนแรกเริ่มพฤษภาคม
// ม.ค.–เม.ย. จึงยังนับเป็นปีการศึกษาก่อนหน้า
func AcademicYear(t time.Time) string {
	y := BuddhistYear(t.Year())
	if t.Month() < time.May {
		y--
	}
	return fmt.Sprintf("%d", y)
}
