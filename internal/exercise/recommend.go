package exercise

import "sort"

const (
	// maxRecommendations 是推荐清单的最大长度
	maxRecommendations = 5

	// fallbackExamples 是没有未完成练习时，作为示例返回的数量
	fallbackExamples = 3
)

// categoryPriority 把难度档位映射为排序优先级，Beginner最优先。
// 未知档位排在最后。
func categoryPriority(category string) int {
	switch category {
	case CategoryBeginner:
		return 0
	case CategoryIntermediate:
		return 1
	case CategoryAdvanced:
		return 2
	default:
		return 3
	}
}

// Recommend 从用户的全部练习中挑选接下来应该做的练习清单。
// 规则：过滤未完成 -> 按难度从易到难稳定排序 -> 截断到5条；
// 如果没有任何未完成的练习，则退回用户列表的前3条作为示例。
// 只要用户名下有练习，返回的清单就保证非空。
func Recommend(all []Exercise) []Exercise {
	incomplete := make([]Exercise, 0, len(all))
	for _, ex := range all {
		if !ex.Completed {
			incomplete = append(incomplete, ex)
		}
	}

	// 稳定排序保持同档位内的原始相对顺序
	sort.SliceStable(incomplete, func(i, j int) bool {
		return categoryPriority(incomplete[i].Category) < categoryPriority(incomplete[j].Category)
	})

	if len(incomplete) > maxRecommendations {
		incomplete = incomplete[:maxRecommendations]
	}

	if len(incomplete) > 0 {
		return incomplete
	}

	// 全部完成时退回前几条已完成的练习作为示例
	if len(all) > fallbackExamples {
		return all[:fallbackExamples]
	}
	return all
}
