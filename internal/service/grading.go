package service

import (
	"eduquiz_backend/internal/model"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// normalizeAnswer 将原始作答值归一化为可比较的形式：去除首尾空格并转小写。
// 数字与字符串统一先转为字符串；空值/空串归一化为 ""。所有答案比对都必须
// 经过这里，保证大小写与空白处理一致。
func normalizeAnswer(raw interface{}) string {
	if raw == nil {
		return ""
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case float64:
		// JSON 数字解码为 float64，整数值不带小数点输出
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		s = v.String()
	default:
		s = fmt.Sprintf("%v", v)
	}

	return strings.ToLower(strings.TrimSpace(s))
}

// decodeOptions 解析题目选项 JSON。解析失败按无选项处理，不报错。
func decodeOptions(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var options []string
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil
	}
	return options
}

// resolveAcceptedAnswers 计算一道题的可接受答案集合。
// 非选择题只接受标准答案原文；选择题同时接受标准答案原文，以及当标准答案
// 可解析为合法选项下标时对应选项的原文——出题人可能以任一方式录入答案，
// 两种解释都保留。标准答案缺失或归一化为空时返回空集合（任何作答都不得分）。
func resolveAcceptedAnswers(q *model.Question) map[string]struct{} {
	accepted := make(map[string]struct{})

	if norm := normalizeAnswer(q.CorrectAnswer); norm != "" {
		accepted[norm] = struct{}{}
	}

	if q.QuestionType == model.QuestionMultipleChoice {
		options := decodeOptions(q.Options)
		if idx, err := strconv.Atoi(strings.TrimSpace(q.CorrectAnswer)); err == nil && idx >= 0 && idx < len(options) {
			if norm := normalizeAnswer(options[idx]); norm != "" {
				accepted[norm] = struct{}{}
			}
		}
	}

	return accepted
}

// answerKeyCandidates 返回按优先级排列的候选答案键。提交端的键格式不统一：
// 可能直接用题目序号（JSON 对象键总是字符串，数字键与数字字符串键在这里
// 是同一形式），也可能用 "question-<序号>" 模板。顺序即优先级，不可调整。
func answerKeyCandidates(ordinal int) []string {
	return []string{
		strconv.Itoa(ordinal),
		fmt.Sprintf("question-%d", ordinal),
	}
}

// lookupAnswer 依次尝试候选键，命中即返回
func lookupAnswer(answers map[string]interface{}, ordinal int) (interface{}, bool) {
	for _, key := range answerKeyCandidates(ordinal) {
		if v, ok := answers[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// answerIsCorrect 判断某道题在一份作答中是否答对。题目在试卷中的位置
// （0 基序号）即答案键。
func answerIsCorrect(q *model.Question, answers map[string]interface{}, ordinal int) bool {
	raw, ok := lookupAnswer(answers, ordinal)
	if !ok {
		return false
	}

	norm := normalizeAnswer(raw)
	if norm == "" {
		return false
	}

	_, ok = resolveAcceptedAnswers(q)[norm]
	return ok
}

// gradeSubmission 对一份作答评分。按题目存储顺序逐题比对，答对累加该题
// 分值；未作答或作答为空的题目记 0 分并继续。百分比按试卷声明总分计算，
// 四舍五入保留两位小数并截断到 100（防止各题分值之和超过声明总分的录入
// 错误）；总分为 0 或缺失时百分比定义为 0。单题数据异常只影响该题得分，
// 不中断整卷评分。
func gradeSubmission(questions []model.Question, answers map[string]interface{}, totalMarks int) (int, float64) {
	score := 0
	for i := range questions {
		q := &questions[i]
		if q.Marks <= 0 {
			continue
		}
		if answerIsCorrect(q, answers, i) {
			score += q.Marks
		}
	}

	return score, percentageOf(score, totalMarks)
}

// percentageOf 计算百分比，保留两位小数并截断到 [0, 100]
func percentageOf(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(score) / float64(total) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return math.Round(pct*100) / 100
}
