package stages

// BadgeValues 关卡徽章面值，从大到小
var BadgeValues = [...]int{50, 30, 20, 10, 5, 1}

// Badges 每种面值徽章的数量，下标与 BadgeValues 对应
type Badges [len(BadgeValues)]int

// Total 徽章总数（徽章动画的步数）
func (b Badges) Total() int {
	n := 0
	for _, c := range b {
		n += c
	}
	return n
}

// CalcStageBadges 把关卡号拆成徽章，优先使用大面值
func CalcStageBadges(stage int) Badges {
	var b Badges
	if stage <= 0 {
		return b
	}
	for i, v := range BadgeValues {
		b[i] = stage / v
		stage %= v
	}
	return b
}
