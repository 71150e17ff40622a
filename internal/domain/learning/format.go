package learning

import (
	"fmt"
	"strings"
)

const ruleWidth = 70

// FormatText renders the plan as the printable report block: header,
// weekly breakdown with resources and milestones, tips footer. A
// congratulatory path renders the no-gaps variant instead.
func (p *Path) FormatText() string {
	if p.Congratulatory {
		return p.formatNoGaps()
	}

	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	thin := strings.Repeat("-", ruleWidth)

	b.WriteString(rule + "\n")
	b.WriteString("YOUR PERSONALIZED 4-WEEK LEARNING PATH\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Generated on: %s\n", p.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Overall Match: %.2f%%\n", p.MatchPercentage)
	fmt.Fprintf(&b, "Skills to Learn: %d\n\n", p.TotalMissing)

	for _, week := range p.Weeks {
		b.WriteString(thin + "\n")
		fmt.Fprintf(&b, "WEEK %d\n", week.Number)
		b.WriteString(thin + "\n\n")

		fmt.Fprintf(&b, "Focus Skills: %s\n\n", strings.Join(week.SkillNames(), ", "))

		for _, s := range week.Skills {
			fmt.Fprintf(&b, "%s Learning Resources:\n", s.Name)
			resources := week.Resources[s.Name]
			if len(resources) == 0 {
				fmt.Fprintf(&b, "   - Search online for '%s tutorial'\n", s.Name)
				b.WriteString("   - Check platforms: Udemy, Coursera, YouTube\n\n")
				continue
			}
			shown := resources
			if len(shown) > 2 {
				shown = shown[:2]
			}
			for i, r := range shown {
				fmt.Fprintf(&b, "   %d. %s (%s)\n", i+1, r.Title, r.Platform)
				fmt.Fprintf(&b, "      -> %s\n", r.URL)
				if r.Rating > 0 {
					fmt.Fprintf(&b, "      Rating: %.1f/5.0 | Duration: %d week(s) | Level: %s\n",
						r.Rating, r.DurationWeeks, r.Difficulty)
				}
			}
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "Week %d Milestones:\n", week.Number)
		milestones := week.Milestones
		if len(milestones) > 4 {
			milestones = milestones[:4]
		}
		for i, m := range milestones {
			fmt.Fprintf(&b, "   %d. %s\n", i+1, m)
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString("TIPS FOR SUCCESS\n")
	b.WriteString(rule + "\n\n")
	b.WriteString("- Dedicate 1-2 hours daily to learning\n")
	b.WriteString("- Build projects to reinforce concepts\n")
	b.WriteString("- Join online communities (Stack Overflow, Reddit, Discord)\n")
	b.WriteString("- Document your progress on GitHub\n")
	b.WriteString("- Update your resume as you learn new skills\n")
	b.WriteString("- Don't rush - deep understanding beats speed\n\n")
	b.WriteString(rule + "\n")
	b.WriteString("Good luck on your learning journey!\n")
	b.WriteString(rule + "\n")

	return b.String()
}

func (p *Path) formatNoGaps() string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	b.WriteString(rule + "\n")
	b.WriteString("CONGRATULATIONS!\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Overall Match: %.2f%%\n\n", p.MatchPercentage)
	b.WriteString("You already have all the key skills required for the analyzed jobs!\n")
	b.WriteString("Consider focusing on:\n\n")
	b.WriteString("- Advanced topics in your existing skills\n")
	b.WriteString("- Emerging technologies in your field\n")
	b.WriteString("- Leadership and soft skills development\n")
	b.WriteString("- Building a strong portfolio of projects\n\n")
	b.WriteString(rule + "\n")

	return b.String()
}
