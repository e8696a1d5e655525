package taskparser_test

import (
	"strings"
	"testing"
	"time"

	"ai-task-planner/pkg/taskparser"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newParser() *taskparser.Parser {
	return taskparser.New(taskparser.WithNow(func() time.Time { return fixedNow }))
}

func TestParse_TwoAnnotatedTasks(t *testing.T) {
	input := "1. **制定学习计划** - 列出具体的学习内容 (⏰ 1小时 | 🔥🔥🔥)\n2. **收集资料** - 整理相关资源 (⏰ 30分钟 | 🔥🔥)"

	tasks := newParser().Parse(input)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	first := tasks[0]
	if first.Content != "制定学习计划 - 列出具体的学习内容" {
		t.Errorf("unexpected content: %q", first.Content)
	}
	if first.Priority != taskparser.PriorityHigh {
		t.Errorf("expected high priority, got %s", first.Priority)
	}
	if first.EstimatedHours == nil || *first.EstimatedHours != 1 {
		t.Errorf("expected 1 hour, got %v", first.EstimatedHours)
	}
	if first.Status != taskparser.StatusPending {
		t.Errorf("expected pending, got %s", first.Status)
	}
	if first.ExpiresAt == nil || !first.ExpiresAt.Equal(fixedNow.Add(time.Hour)) {
		t.Errorf("unexpected expiry: %v", first.ExpiresAt)
	}

	second := tasks[1]
	if second.Content != "收集资料 - 整理相关资源" {
		t.Errorf("unexpected content: %q", second.Content)
	}
	if second.Priority != taskparser.PriorityMedium {
		t.Errorf("expected medium priority, got %s", second.Priority)
	}
	if second.EstimatedHours == nil || *second.EstimatedHours != 0.5 {
		t.Errorf("expected 0.5 hours, got %v", second.EstimatedHours)
	}
}

func TestParse_NoTasks(t *testing.T) {
	tasks := newParser().Parse("do the laundry and pay bills")
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}

	result := taskparser.Validate(tasks)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 1 || result.Errors[0] != taskparser.ErrMsgNoTasks {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
}

func TestParse_ClampsLongEstimates(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantHours float64
	}{
		{name: "Hours", input: "1. **写论文** - 完成全部章节 (⏰ 240小时 | 🔥🔥🔥)", wantHours: 240},
		{name: "Days", input: "1. **装修房子** - 全屋翻新 (⏰ 10天)", wantHours: 240},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tasks := newParser().Parse(tc.input)
			if len(tasks) != 1 {
				t.Fatalf("expected 1 task, got %d", len(tasks))
			}
			task := tasks[0]
			if *task.EstimatedHours != tc.wantHours {
				t.Errorf("expected %v hours, got %v", tc.wantHours, *task.EstimatedHours)
			}
			if !task.ExpiresAt.Equal(task.StartTime.Add(7 * 24 * time.Hour)) {
				t.Errorf("expected expiry clamped to 7 days, got %v", task.ExpiresAt.Sub(*task.StartTime))
			}
		})
	}
}

func TestParse_LooseFallback(t *testing.T) {
	tasks := newParser().Parse("今天的安排:\n1. 买菜\n2.  做饭  \n别忘了洗碗")
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	want := []string{"买菜", "做饭"}
	for i, task := range tasks {
		if task.Content != want[i] {
			t.Errorf("task %d: expected %q, got %q", i, want[i], task.Content)
		}
		if task.Priority != taskparser.PriorityMedium {
			t.Errorf("task %d: expected medium, got %s", i, task.Priority)
		}
		if task.EstimatedHours != nil || task.ExpiresAt != nil {
			t.Errorf("task %d: expected no estimate and no expiry", i)
		}
		if task.StartTime == nil || !task.StartTime.Equal(fixedNow) {
			t.Errorf("task %d: unexpected start time %v", i, task.StartTime)
		}
	}
}

func TestParse_LooseFallbackIgnoresDecimals(t *testing.T) {
	tasks := newParser().Parse("1.5 hours of reading\n2. 写总结")
	if len(tasks) != 1 || tasks[0].Content != "写总结" {
		t.Fatalf("expected only the numbered line, got %+v", tasks)
	}
}

func TestParse_PositionalPriority(t *testing.T) {
	var b strings.Builder
	names := []string{"one", "two", "three", "four", "five", "six", "seven"}
	for i, n := range names {
		b.WriteString(string(rune('1'+i)) + ". **Step " + n + "** - do the thing\n")
	}

	tasks := newParser().Parse(b.String())
	want := []taskparser.Priority{
		taskparser.PriorityHigh,
		taskparser.PriorityHigh,
		taskparser.PriorityHigh,
		taskparser.PriorityMedium,
		taskparser.PriorityMedium,
		taskparser.PriorityLow,
		taskparser.PriorityLow,
	}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i := range want {
		if tasks[i].Priority != want[i] {
			t.Errorf("task %d: expected %s, got %s", i+1, want[i], tasks[i].Priority)
		}
	}
}

func TestParse_SharedStartAndIdempotence(t *testing.T) {
	calls := 0
	p := taskparser.New(taskparser.WithNow(func() time.Time {
		calls++
		return fixedNow.Add(time.Duration(calls) * time.Minute)
	}))
	input := "1. **A task** - research options\n2. **B task** - send report (⏰ 2h | 🔥🔥🔥🔥)"

	first := p.Parse(input)
	second := p.Parse(input)

	if calls != 2 {
		t.Fatalf("expected clock sampled once per call, got %d samples", calls)
	}
	if !first[0].StartTime.Equal(*first[1].StartTime) {
		t.Error("expected tasks of one call to share a start time")
	}
	for i := range first {
		if first[i].Content != second[i].Content ||
			first[i].Priority != second[i].Priority ||
			*first[i].EstimatedHours != *second[i].EstimatedHours {
			t.Errorf("task %d differs between runs", i)
		}
		d := first[i].ExpiresAt.Sub(*first[i].StartTime)
		if d < 0 || d > 7*24*time.Hour {
			t.Errorf("task %d: expiry offset %v out of range", i, d)
		}
	}
	if first[1].Priority != taskparser.PriorityUrgent {
		t.Errorf("expected urgent, got %s", first[1].Priority)
	}
}

func TestExtractTaskLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []taskparser.Fragment
	}{
		{
			name:  "Annotation split off",
			input: "1. **准备食材** - 鸡蛋、米饭 (⏰ 10分钟 | 🔥🔥🔥)",
			want: []taskparser.Fragment{{
				Ordinal:     "1",
				Name:        "准备食材",
				Description: "鸡蛋、米饭",
				Annotation:  "(⏰ 10分钟 | 🔥🔥🔥)",
				Raw:         "1. **准备食材** - 鸡蛋、米饭 (⏰ 10分钟 | 🔥🔥🔥)",
			}},
		},
		{
			name:  "Dash variants and bullets",
			input: "- **Draft** – write outline\n* **Review** — ask a friend",
			want: []taskparser.Fragment{
				{Name: "Draft", Description: "write outline", Raw: "**Draft** – write outline", Offset: 2},
				{Name: "Review", Description: "ask a friend", Raw: "**Review** — ask a friend", Offset: 32},
			},
		},
		{
			name:  "Two tasks on one line",
			input: "1. **A** - first 2. **B** - second",
			want: []taskparser.Fragment{
				{Ordinal: "1", Name: "A", Description: "first", Raw: "1. **A** - first"},
				{Ordinal: "2", Name: "B", Description: "second", Raw: "2. **B** - second", Offset: 17},
			},
		},
		{
			name:  "Empty description before a second task",
			input: "1. **A** - 2. **B** - x",
			want: []taskparser.Fragment{
				{Ordinal: "2", Name: "B", Description: "x", Raw: "2. **B** - x", Offset: 11},
			},
		},
		{
			name:  "Empty parts skipped",
			input: "1. **  ** - nothing\n2. **Only note** - (⏰ 1h)\n3. **Real** - work",
			want: []taskparser.Fragment{
				{Ordinal: "3", Name: "Real", Description: "work", Raw: "3. **Real** - work", Offset: 48},
			},
		},
		{
			name:  "Plain prose",
			input: "do the laundry and pay bills",
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := taskparser.ExtractTaskLines(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d fragments, got %d: %+v", len(tc.want), len(got), got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("fragment %d:\n got  %+v\n want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestInferPriority(t *testing.T) {
	sixth := "1. a\n2. b\n3. c\n4. d\n5. e\n"
	tests := []struct {
		name    string
		full    string
		matched string
		offset  int
		want    taskparser.Priority
	}{
		{name: "Four flames beat position", full: sixth + "6. **X** - y (🔥🔥🔥🔥)", matched: "6. **X** - y (🔥🔥🔥🔥)", offset: len(sixth), want: taskparser.PriorityUrgent},
		{name: "Urgent word any case", matched: "**X** - URGENT fix", want: taskparser.PriorityUrgent},
		{name: "Chinese urgent", matched: "**X** - 紧急处理", want: taskparser.PriorityUrgent},
		{name: "Three flames", matched: "**X** - y 🔥🔥🔥", want: taskparser.PriorityHigh},
		{name: "Two flames", matched: "**X** - y 🔥🔥", want: taskparser.PriorityMedium},
		{name: "One flame", matched: "**X** - y 🔥", want: taskparser.PriorityLow},
		{name: "Low word", matched: "**X** - priority: low", full: sixth, offset: 0, want: taskparser.PriorityLow},
		{name: "Word inside another word", full: sixth + "6. **Highlight** - y", matched: "6. **Highlight** - y", offset: len(sixth), want: taskparser.PriorityLow},
		{name: "Position three", full: "1. a\n2. b\n3. c", matched: "3. c", offset: 10, want: taskparser.PriorityHigh},
		{name: "Position four", full: "1. a\n2. b\n3. c\n4. d", matched: "4. d", offset: 15, want: taskparser.PriorityMedium},
		{name: "Decimal numbers are not ordinals", full: "1.5 2.5 3.5 4.5 5.5 6. x", matched: "6. x", offset: 20, want: taskparser.PriorityHigh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := taskparser.InferPriority(tc.full, tc.matched, tc.offset)
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestInferEstimatedHours(t *testing.T) {
	tests := []struct {
		name    string
		matched string
		want    float64
	}{
		{name: "Chinese hours", matched: "(⏰ 2小时)", want: 2},
		{name: "Decimal hours", matched: "(⏰ 1.5h)", want: 1.5},
		{name: "English hours", matched: "(⏰ 2 hours)", want: 2},
		{name: "Chinese days", matched: "(⏰ 3天)", want: 72},
		{name: "Short days", matched: "(⏰ 2d)", want: 48},
		{name: "Chinese minutes", matched: "(⏰ 45分钟)", want: 0.75},
		{name: "Stopwatch minutes", matched: "(⏱️ 90 min)", want: 1.5},
		{name: "Estimate tag", matched: "预计 2 小时", want: 2},
		{name: "Zero falls back", matched: "研究方案 (⏰ 0小时)", want: 4},
		{name: "Unit must be a whole word", matched: "(⏰ 2 dollars)", want: 1},
		{name: "Chinese unit before text", matched: "预计2小时完成", want: 2},
		{name: "Research", matched: "**研究竞品** - 看看别人", want: 4},
		{name: "Analyze", matched: "**Analyze data** - numbers", want: 4},
		{name: "Study", matched: "**阅读文档** - 官方文档", want: 2},
		{name: "Read", matched: "**Read the docs** - carefully", want: 2},
		{name: "Confirm", matched: "**确认订单** - 电话", want: 0.5},
		{name: "Send", matched: "**Send the email** - to the team", want: 0.5},
		{name: "Complex wins over quick", matched: "design then check", want: 4},
		{name: "Long line", matched: strings.Repeat("word ", 21), want: 3},
		{name: "Medium line", matched: strings.Repeat("word ", 11), want: 2},
		{name: "Short line", matched: "buy milk", want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := taskparser.InferEstimatedHours(tc.matched)
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestProjectExpiry(t *testing.T) {
	hours := func(v float64) *float64 { return &v }

	tests := []struct {
		name  string
		hours *float64
		want  *time.Duration
	}{
		{name: "Absent", hours: nil},
		{name: "Zero", hours: hours(0)},
		{name: "Negative", hours: hours(-3)},
		{name: "Half hour", hours: hours(0.5), want: durationPtr(30 * time.Minute)},
		{name: "Two hours", hours: hours(2), want: durationPtr(2 * time.Hour)},
		{name: "Exactly a week", hours: hours(168), want: durationPtr(7 * 24 * time.Hour)},
		{name: "Huge", hours: hours(1e12), want: durationPtr(7 * 24 * time.Hour)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := taskparser.ProjectExpiry(fixedNow, tc.hours)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil || !got.Equal(fixedNow.Add(*tc.want)) {
				t.Errorf("expected %v, got %v", fixedNow.Add(*tc.want), got)
			}
		})
	}
}

func durationPtr(d time.Duration) *time.Duration { return &d }

func TestValidate(t *testing.T) {
	ok := taskparser.ParsedTask{Content: "收集资料 - 整理相关资源"}

	t.Run("All valid", func(t *testing.T) {
		result := taskparser.Validate([]taskparser.ParsedTask{ok, {Content: strings.Repeat("字", 500)}})
		if !result.Valid || len(result.Errors) != 0 {
			t.Errorf("expected valid, got %v", result.Errors)
		}
	})

	t.Run("Too long among valid tasks", func(t *testing.T) {
		long := taskparser.ParsedTask{Content: strings.Repeat("a", 501)}
		result := taskparser.Validate([]taskparser.ParsedTask{ok, long, ok})
		if result.Valid {
			t.Fatal("expected invalid")
		}
		if len(result.Errors) != 1 || result.Errors[0] != "task 2 content too long" {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
	})

	t.Run("Length counts surrounding spaces", func(t *testing.T) {
		padded := taskparser.ParsedTask{Content: " " + strings.Repeat("a", 500)}
		result := taskparser.Validate([]taskparser.ParsedTask{padded})
		if result.Valid || len(result.Errors) != 1 || result.Errors[0] != "task 1 content too long" {
			t.Errorf("expected too long, got %v", result.Errors)
		}
	})

	t.Run("Collects every error", func(t *testing.T) {
		result := taskparser.Validate([]taskparser.ParsedTask{
			{Content: "  "},
			ok,
			{Content: strings.Repeat("b", 600)},
		})
		want := []string{"task 1 content is empty", "task 3 content too long"}
		if len(result.Errors) != len(want) {
			t.Fatalf("expected %v, got %v", want, result.Errors)
		}
		for i := range want {
			if result.Errors[i] != want[i] {
				t.Errorf("error %d: expected %q, got %q", i, want[i], result.Errors[i])
			}
		}
	})

	t.Run("Input untouched", func(t *testing.T) {
		in := []taskparser.ParsedTask{{Content: ""}}
		taskparser.Validate(in)
		if len(in) != 1 {
			t.Error("expected input to keep its length")
		}
	})
}

func TestExtractListName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Goal heading",
			input: "### 🎯 目标分析\n快速制作一份简单的蛋炒饭，作为早餐！\n\n### 📝 任务清单\n1. **准备食材** - 鸡蛋",
			want:  "快速制作一份简单的蛋炒饭作为早餐",
		},
		{
			name:  "Goal heading truncated",
			input: "## 目标分析\n\n学习Go语言并在三个月内完成一个完整的后端项目开发",
			want:  "学习Go语言并在三个月内完成一个完整的后...",
		},
		{
			name:  "Task list heading",
			input: "### 📝 任务清单\n\n1. **准备食材** - 鸡蛋",
			want:  "准备食材相关任务",
		},
		{
			name:  "English task list heading",
			input: "## Task List\n1. **Buy groceries** - milk",
			want:  "Buy" + taskparser.RelatedTasksSuffix,
		},
		{
			name:  "Empty goal section",
			input: "### 🎯 目标分析\n### 📝 任务清单\n1. **Plan trip** - pick dates",
			want:  "Plan" + taskparser.RelatedTasksSuffix,
		},
		{
			name:  "No headings",
			input: "1. **A** - b",
			want:  taskparser.DefaultListName,
		},
		{
			name:  "Empty input",
			input: "",
			want:  taskparser.DefaultListName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := taskparser.ExtractListName(tc.input); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
