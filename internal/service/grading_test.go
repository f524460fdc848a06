package service

import (
	"encoding/json"
	"testing"

	"eduquiz_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func mcq(text string, marks int, options []string, correct string) model.Question {
	raw, _ := json.Marshal(options)
	return model.Question{
		Text:          text,
		QuestionType:  model.QuestionMultipleChoice,
		Marks:         marks,
		Options:       raw,
		CorrectAnswer: correct,
	}
}

func shortQ(text string, marks int, correct string) model.Question {
	return model.Question{
		Text:          text,
		QuestionType:  model.QuestionShortAnswer,
		Marks:         marks,
		CorrectAnswer: correct,
	}
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "", normalizeAnswer(nil))
	assert.Equal(t, "", normalizeAnswer("   "))
	assert.Equal(t, "paris", normalizeAnswer("  Paris "))
	assert.Equal(t, "2", normalizeAnswer(float64(2)))
	assert.Equal(t, "2.5", normalizeAnswer(float64(2.5)))
	assert.Equal(t, "3", normalizeAnswer(json.Number("3")))
	assert.Equal(t, "true", normalizeAnswer(true))
}

func TestResolveAcceptedAnswers(t *testing.T) {
	t.Run("选择题同时接受原文与下标对应选项", func(t *testing.T) {
		q := mcq("首都", 10, []string{"Paris", "London"}, "0")
		accepted := resolveAcceptedAnswers(&q)
		assert.Contains(t, accepted, "0")
		assert.Contains(t, accepted, "paris")
		assert.NotContains(t, accepted, "london")
	})

	t.Run("标准答案为选项原文时不做下标解释", func(t *testing.T) {
		q := mcq("首都", 10, []string{"Paris", "London"}, "Paris")
		accepted := resolveAcceptedAnswers(&q)
		assert.Contains(t, accepted, "paris")
		assert.Len(t, accepted, 1)
	})

	t.Run("下标越界只接受原文", func(t *testing.T) {
		q := mcq("首都", 10, []string{"Paris", "London"}, "5")
		accepted := resolveAcceptedAnswers(&q)
		assert.Equal(t, map[string]struct{}{"5": {}}, accepted)
	})

	t.Run("非选择题不做下标解释", func(t *testing.T) {
		q := shortQ("1+1", 5, "2")
		accepted := resolveAcceptedAnswers(&q)
		assert.Equal(t, map[string]struct{}{"2": {}}, accepted)
	})

	t.Run("标准答案缺失时任何作答都不得分", func(t *testing.T) {
		q := shortQ("待定", 5, "   ")
		assert.Empty(t, resolveAcceptedAnswers(&q))
	})

	t.Run("选项JSON损坏按无选项处理", func(t *testing.T) {
		q := model.Question{
			QuestionType:  model.QuestionMultipleChoice,
			Marks:         5,
			Options:       json.RawMessage(`{"broken"`),
			CorrectAnswer: "0",
		}
		accepted := resolveAcceptedAnswers(&q)
		assert.Equal(t, map[string]struct{}{"0": {}}, accepted)
	})
}

func TestLookupAnswer(t *testing.T) {
	answers := map[string]interface{}{
		"0":          "a",
		"question-1": "b",
	}

	v, ok := lookupAnswer(answers, 0)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = lookupAnswer(answers, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = lookupAnswer(answers, 2)
	assert.False(t, ok)
}

func TestLookupAnswerPrefersOrdinalKey(t *testing.T) {
	answers := map[string]interface{}{
		"0":          "first",
		"question-0": "second",
	}
	v, ok := lookupAnswer(answers, 0)
	assert.True(t, ok)
	assert.Equal(t, "first", v)
}

func TestGradeSubmission(t *testing.T) {
	t.Run("选项下标作答计满分", func(t *testing.T) {
		questions := []model.Question{
			mcq("法国的首都？", 10, []string{"Paris", "London", "Berlin"}, "Paris"),
		}
		score, pct := gradeSubmission(questions, map[string]interface{}{"0": "Paris"}, 10)
		assert.Equal(t, 10, score)
		assert.Equal(t, 100.0, pct)
	})

	t.Run("答错计零分", func(t *testing.T) {
		questions := []model.Question{
			mcq("法国的首都？", 10, []string{"Paris", "London", "Berlin"}, "Paris"),
		}
		score, pct := gradeSubmission(questions, map[string]interface{}{"0": "London"}, 10)
		assert.Equal(t, 0, score)
		assert.Equal(t, 0.0, pct)
	})

	t.Run("部分答对按比例计算百分比", func(t *testing.T) {
		questions := []model.Question{
			shortQ("1+1", 5, "2"),
			shortQ("2+2", 5, "4"),
		}
		answers := map[string]interface{}{
			"0": "2",
			"1": "5",
		}
		score, pct := gradeSubmission(questions, answers, 10)
		assert.Equal(t, 5, score)
		assert.Equal(t, 50.0, pct)
	})

	t.Run("模板键与数字值作答", func(t *testing.T) {
		questions := []model.Question{
			shortQ("1+1", 5, "2"),
		}
		score, pct := gradeSubmission(questions, map[string]interface{}{"question-0": float64(2)}, 5)
		assert.Equal(t, 5, score)
		assert.Equal(t, 100.0, pct)
	})

	t.Run("大小写与空白不影响比对", func(t *testing.T) {
		questions := []model.Question{
			shortQ("首都", 10, "Paris"),
		}
		score, _ := gradeSubmission(questions, map[string]interface{}{"0": "  pArIs  "}, 10)
		assert.Equal(t, 10, score)
	})

	t.Run("未作答的题目计零分且不中断", func(t *testing.T) {
		questions := []model.Question{
			shortQ("1+1", 5, "2"),
			shortQ("2+2", 5, "4"),
			shortQ("3+3", 5, "6"),
		}
		answers := map[string]interface{}{"2": "6"}
		score, pct := gradeSubmission(questions, answers, 15)
		assert.Equal(t, 5, score)
		assert.Equal(t, 33.33, pct)
	})

	t.Run("零分值题目跳过", func(t *testing.T) {
		questions := []model.Question{
			shortQ("无分值", 0, "x"),
			shortQ("1+1", 5, "2"),
		}
		answers := map[string]interface{}{"0": "x", "1": "2"}
		score, _ := gradeSubmission(questions, answers, 5)
		assert.Equal(t, 5, score)
	})

	t.Run("总分为零时百分比为零", func(t *testing.T) {
		questions := []model.Question{shortQ("1+1", 5, "2")}
		score, pct := gradeSubmission(questions, map[string]interface{}{"0": "2"}, 0)
		assert.Equal(t, 5, score)
		assert.Equal(t, 0.0, pct)
	})

	t.Run("题目分值之和超过声明总分时百分比截断到100", func(t *testing.T) {
		questions := []model.Question{
			shortQ("1+1", 8, "2"),
			shortQ("2+2", 8, "4"),
		}
		answers := map[string]interface{}{"0": "2", "1": "4"}
		score, pct := gradeSubmission(questions, answers, 10)
		assert.Equal(t, 16, score)
		assert.Equal(t, 100.0, pct)
	})
}

func TestPercentageOf(t *testing.T) {
	assert.Equal(t, 0.0, percentageOf(5, 0))
	assert.Equal(t, 0.0, percentageOf(5, -1))
	assert.Equal(t, 50.0, percentageOf(5, 10))
	assert.Equal(t, 66.67, percentageOf(2, 3))
	assert.Equal(t, 100.0, percentageOf(15, 10))
}
