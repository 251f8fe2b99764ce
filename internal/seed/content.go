package seed

import "github.com/engage-app/seedctl/internal/app/models"

// Official competitive event catalog. Resource rows reference these names as
// free text; no Event row needs to exist for them.
var competitiveEvents = []string{
	"Accounting", "Advanced Accounting", "Advertising", "Agribusiness",
	"Banking & Financial Systems", "Broadcast Journalism", "Business Communication",
	"Business Ethics", "Business Law", "Business Management", "Business Plan",
	"Career Portfolio", "Coding & Programming", "Community Service Project",
	"Computer Applications", "Computer Game & Simulation Programming",
	"Computer Problem Solving", "Customer Service", "Cybersecurity",
	"Data Analysis", "Data Science & AI", "Digital Animation",
	"Digital Video Production", "Economics", "Entrepreneurship", "Event Planning",
	"Financial Planning", "Financial Statement Analysis", "Future Business Educator",
	"Future Business Leader", "Graphic Design", "Healthcare Administration",
	"Hospitality & Event Management", "Human Resource Management",
	"Impromptu Speaking", "Insurance & Risk Management", "International Business",
	"Introduction to Business Communication", "Introduction to Business Concepts",
	"Introduction to Business Presentation", "Introduction to Business Procedures",
	"Introduction to FBLA", "Introduction to Information Technology",
	"Introduction to Marketing Concepts", "Introduction to Parliamentary Procedure",
	"Introduction to Programming", "Introduction to Public Speaking",
	"Introduction to Retail & Merchandising", "Introduction to Social Media Strategy",
	"Introduction to Supply Chain Management", "Job Interview", "Journalism",
	"Local Chapter Annual Business Report", "Management Information Systems",
	"Marketing", "Mobile Application Development", "Network Design",
	"Networking Infrastructures", "Organizational Leadership", "Parliamentary Procedure",
	"Personal Finance", "Project Management", "Public Administration & Management",
	"Public Service Announcement", "Public Speaking", "Real Estate",
	"Retail Management", "Sales Presentation", "Securities & Investments",
	"Social Media Strategies", "Sports & Entertainment Management",
	"Supply Chain Management", "Technology Support & Services", "Visual Design",
	"Website Coding & Development", "Website Design",
}

// Fixed chapter name pool, cycled by index. Past the pool, names are
// synthesized from the city pool instead.
var schoolNames = []string{
	"Lincoln High School FBLA",
	"Washington High School FBLA",
	"Roosevelt High School FBLA",
	"Jefferson High School FBLA",
	"Madison High School FBLA",
	"Hamilton High School FBLA",
	"Franklin High School FBLA",
	"Adams High School FBLA",
}

var postContent = []string{
	"Just qualified for State! So excited to represent our chapter! 🎉",
	"Practice test scores are improving every week. Hard work pays off! 💪",
	"Our chapter raised $5,000 for local charities this semester. Proud of everyone!",
	"Business Plan competition was intense! Learned so much from other teams.",
	"Networking event was incredible. Met so many inspiring business leaders!",
	"Accounting exam prep is going well. Thanks to everyone who shared study tips!",
	"Congratulations to all State qualifiers! Let's bring home the trophy! 🏆",
	"Leadership workshop changed my perspective. Highly recommend to everyone!",
	"Working on my coding project for the competition. Can't wait to present!",
	"Marketing strategy presentation went great! Feedback was really helpful.",
	"Community service project is making a real impact. So rewarding!",
	"Study group session was productive. Teamwork makes the dream work!",
	"Just finished my Business Ethics presentation. Feeling confident!",
	"Financial planning workshop was eye-opening. Everyone should attend!",
	"Our chapter won Chapter of the Year! So proud to be part of this team!",
}

var commentTexts = []string{
	"Great job! Keep it up!", "This is so inspiring!", "Congratulations!",
	"You've got this!", "Amazing work!", "Good luck at State!",
	"So proud of you!", "This is awesome!", "Keep pushing forward!",
	"You're doing great!", "Can't wait to see you compete!",
	"Our chapter is rooting for you!", "Well deserved!", "Incredible achievement!",
}

var messageTexts = []string{
	"Hey! How's your preparation going?",
	"Good luck on your competition!",
	"See you at the meeting tomorrow",
	"Great job on your presentation!",
	"Can you help me with the study guide?",
	"Thanks for sharing the resources!",
	"Let's practice together this weekend",
	"Congratulations on qualifying for State!",
	"The event was amazing!",
	"Looking forward to working together",
	"Our chapter meeting is at 3pm",
	"Don't forget about the practice test",
	"See you at Regionals!",
	"Thanks for the study tips!",
}

// Title templates per resource type; {event} in seed.py becomes a Sprintf verb.
var resourceTitles = map[models.ResourceType][]string{
	models.ResourceTypeDocument: {
		"%s Study Guide",
		"%s Practice Test Questions",
		"%s Competition Guidelines",
		"%s Sample Problems",
		"%s Review Materials",
		"%s Quick Reference Guide",
		"%s Test Preparation Workbook",
	},
	models.ResourceTypeLink: {
		"%s Online Course",
		"%s Tutorial Series",
		"%s Official Competition Rules",
		"%s Practice Platform",
		"%s Study Resources",
		"%s Video Tutorials",
		"%s Interactive Learning",
	},
	models.ResourceTypeVideo: {
		"%s Competition Walkthrough",
		"%s Tips and Strategies",
		"%s Sample Presentation",
		"%s Study Session Recording",
		"%s Expert Interview",
		"%s Competition Prep Guide",
	},
}

var resourceDescriptions = map[models.ResourceType]string{
	models.ResourceTypeDocument: "This comprehensive study guide covers all the essential topics you need to master for %s competitions. It includes practice problems, detailed explanations, real-world examples, and expert tips to help you succeed.",
	models.ResourceTypeVideo:    "Step-by-step video tutorials for the %s competitive event. Learn from experienced competitors and coaches as they walk you through key concepts, strategies, and common pitfalls to avoid.",
	models.ResourceTypeLink:     "Access our comprehensive online course for %s. This interactive learning platform includes modules, quizzes, progress tracking, and certification upon completion. Perfect for self-paced study.",
}

// Event title templates, cycled by index
var eventTemplates = []struct {
	Title string
	Level models.EventLevel
}{
	{"Regional Leadership Conference", models.EventLevelRegional},
	{"State Business Competition", models.EventLevelState},
	{"National FBLA Convention", models.EventLevelNational},
	{"Regional Skills Challenge", models.EventLevelRegional},
	{"State Entrepreneurship Fair", models.EventLevelState},
	{"Regional Marketing Expo", models.EventLevelRegional},
	{"State Accounting Competition", models.EventLevelState},
	{"Regional Technology Showcase", models.EventLevelRegional},
	{"State Business Plan Pitch", models.EventLevelState},
	{"Regional Career Development", models.EventLevelRegional},
	{"State Public Speaking Championship", models.EventLevelState},
	{"Regional Coding Competition", models.EventLevelRegional},
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Emily",
	"Anthony", "Michelle", "Mark", "Amanda", "Steven", "Melissa", "Andrew", "Stephanie",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
	"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Clark",
	"Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright", "Scott", "Hill",
}

var cityNames = []string{
	"Springfield", "Riverside", "Fairview", "Georgetown", "Arlington", "Clinton",
	"Salem", "Madison", "Ashland", "Oakdale", "Franklin", "Greenville",
	"Bristol", "Dayton", "Milton", "Auburn", "Lexington", "Clayton",
}

var stateAbbrs = []string{
	"AL", "AZ", "CA", "CO", "FL", "GA", "IL", "IN", "KS", "KY", "MI", "MN",
	"MO", "NC", "NJ", "NY", "OH", "OR", "PA", "TN", "TX", "VA", "WA", "WI",
}

var streetNames = []string{
	"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Park Boulevard",
	"Washington Street", "Lake Road", "Hillcrest Avenue", "Sunset Drive", "Elm Street",
}

var bioInterests = []string{
	"Business", "Marketing", "Finance", "Technology", "Leadership",
	"Entrepreneurship", "Accounting", "Management", "Economics",
}

var awardTitles = []string{"State Champion", "Regional Winner", "National Qualifier", "Chapter Award"}

var awardIcons = []string{"🏆", "🥇", "⭐", "🎖️"}
