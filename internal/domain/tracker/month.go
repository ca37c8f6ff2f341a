package tracker

import (
	"regexp"
)

// Month 月份
// 设计说明：
// 1. 使用int类型（1-12），与数据库存储一致
// 2. 定义为类型别名，便于添加方法
// 3. 解析失败返回错误而不是panic（见ParseMonth）
type Month int

const (
	January   Month = 1
	February  Month = 2
	March     Month = 3
	April     Month = 4
	May       Month = 5
	June      Month = 6
	July      Month = 7
	August    Month = 8
	September Month = 9
	October   Month = 10
	November  Month = 11
	December  Month = 12
)

// monthNames 月份的API取值
var monthNames = map[Month]string{
	January:   "JANUARY",
	February:  "FEBRUARY",
	March:     "MARCH",
	April:     "APRIL",
	May:       "MAY",
	June:      "JUNE",
	July:      "JULY",
	August:    "AUGUST",
	September: "SEPTEMBER",
	October:   "OCTOBER",
	November:  "NOVEMBER",
	December:  "DECEMBER",
}

// String 实现Stringer接口
func (m Month) String() string {
	if name, ok := monthNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid 判断是否为合法月份
func (m Month) IsValid() bool {
	return m >= January && m <= December
}

// ParseMonth 解析月份（1-12）
// 越界返回ErrInvalidMonth
func ParseMonth(value int) (Month, error) {
	m := Month(value)
	if !m.IsValid() {
		return 0, ErrInvalidMonth
	}
	return m, nil
}

// yearPattern 年份为4位数字
var yearPattern = regexp.MustCompile(`^\d{4}$`)

// IsValidYear 年份校验：4位数字且在2000-2100之间
func IsValidYear(year string) bool {
	if !yearPattern.MatchString(year) {
		return false
	}
	// 4位数字保证了字典序与数值序一致
	return year >= "2000" && year <= "2100"
}
