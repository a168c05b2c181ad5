package format

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

func init() {
	Register(Codec{
		Name:   "markdown",
		Exts:   []string{".md", ".markdown"},
		MIME:   "text/markdown; charset=utf-8",
		Export: exportMarkdown,
	})
}

// swapped in tests to pin the Date Generated line
var now = time.Now

// exportMarkdown writes the instructor answer key: metadata header, image
// setup table when questions carry images, every question with its correct
// option marked, and the scoring guide with band floors rounded down.
func exportMarkdown(w io.Writer, qz *quiz.Quiz, pres Presentation) error {
	if len(qz.Questions) == 0 {
		return ErrNoQuestions
	}

	imageByQuestion := map[int]string{}
	for i, q := range qz.Questions {
		if q.Image != "" {
			imageByQuestion[i+1] = q.Image
		}
	}

	fmt.Fprintf(w, "# %s\n\n", qz.Title)
	fmt.Fprintf(w, "## %s\n\n", qz.Description)
	if pres.Author != "" {
		fmt.Fprintf(w, "**Author:** %s\n\n", pres.Author)
	}
	if pres.Company != "" {
		fmt.Fprintf(w, "**Organization:** %s\n\n", pres.Company)
	}
	fmt.Fprintf(w, "**Date Generated:** %s\n\n", now().Format("2006-01-02 15:04:05"))
	io.WriteString(w, "---\n\n")

	if len(imageByQuestion) > 0 {
		io.WriteString(w, "## 📌 Image Setup Instructions\n\n")
		io.WriteString(w, "This quiz requires the following image files to be placed in the same folder as the HTML file:\n\n")
		io.WriteString(w, "| Question | Image File | Description |\n")
		io.WriteString(w, "|----------|------------|-------------|\n")
		nums := make([]int, 0, len(imageByQuestion))
		for n := range imageByQuestion {
			nums = append(nums, n)
		}
		sort.Ints(nums)
		for _, n := range nums {
			fmt.Fprintf(w, "| Question %d | `%s` | %s |\n", n, imageByQuestion[n], truncate(qz.Questions[n-1].Text, 50)+"...")
		}
		io.WriteString(w, "\n**Image Specifications:**\n")
		io.WriteString(w, "- Recommended size: 1024x1024 pixels\n")
		io.WriteString(w, "- Format: PNG or JPG\n")
		io.WriteString(w, "- Location: Same folder as the HTML quiz file\n\n")
		io.WriteString(w, "**To Update Image Paths:**\n")
		io.WriteString(w, "1. Open the HTML file in a text editor\n")
		io.WriteString(w, "2. Find the `IMAGE_PATHS` section near the top\n")
		io.WriteString(w, "3. Update the paths to match your file locations\n\n")
		io.WriteString(w, "---\n\n")
	}

	io.WriteString(w, "## Questions and Answers\n\n")
	for i, q := range qz.Questions {
		fmt.Fprintf(w, "### Question %d", i+1)
		if q.Difficulty != "" {
			fmt.Fprintf(w, " *(Difficulty: %s)*", q.Difficulty)
		}
		if q.Image != "" {
			fmt.Fprintf(w, " 🖼️ *[Image: %s]*", q.Image)
		}
		io.WriteString(w, "\n")
		fmt.Fprintf(w, "**Q:** %s\n\n", q.Text)
		io.WriteString(w, "**Options:**\n")
		for j, opt := range q.Options {
			marker := ""
			if j == q.Correct {
				marker = " ✓"
			}
			fmt.Fprintf(w, "- %c) %s%s\n", 'A'+j, opt, marker)
		}
		fmt.Fprintf(w, "\n**Answer:** %c) %s\n\n", 'A'+q.Correct, q.Options[q.Correct])
		if q.Explanation != "" {
			fmt.Fprintf(w, "**Explanation:** %s\n\n", q.Explanation)
		}
		io.WriteString(w, "---\n\n")
	}

	total := len(qz.Questions)
	io.WriteString(w, "## Scoring Guide\n\n")
	fmt.Fprintf(w, "**Passing Score:** %d%%\n\n", pres.PassThreshold)
	fmt.Fprintf(w, "- **%d-%d correct (90-100%%):** Outstanding! Expert level mastery.\n", total*90/100, total)
	fmt.Fprintf(w, "- **%d-%d correct (80-89%%):** Excellent! Strong understanding.\n", total*80/100, total*90/100-1)
	fmt.Fprintf(w, "- **%d-%d correct (70-79%%):** Good! Meets passing threshold.\n", total*70/100, total*80/100-1)
	fmt.Fprintf(w, "- **%d-%d correct (60-69%%):** Fair. Review missed topics.\n", total*60/100, total*70/100-1)
	fmt.Fprintf(w, "- **Below %d correct (<60%%):** Needs improvement. Study and retake.\n\n", total*60/100)

	io.WriteString(w, "---\n\n")
	io.WriteString(w, "*Generated with QuizForge*\n")
	if c := pres.CopyrightLine(); c != "" {
		fmt.Fprintf(w, "*%s*\n", c)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
