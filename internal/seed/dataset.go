package seed

import "github.com/dfulfagar/portfolio-api/internal/entity"

// Dataset is the fixed content loaded into the five read collections.
type Dataset struct {
	Profile      entity.Profile
	Experiences  []entity.Experience
	Skills       entity.Skills
	Achievements []entity.Achievement
	Education    entity.Education
}

// DefaultDataset returns the portfolio content for Darshan Fulfagar.
func DefaultDataset() Dataset {
	return Dataset{
		Profile: entity.Profile{
			Name:         "Darshan Fulfagar",
			Title:        "Senior Principal Consultant",
			Subtitle:     "Enterprise Solutions Architect • CRM Specialist • Technical Leader",
			Tagline:      "Transforming complex business challenges into elegant technical solutions with 15+ years of expertise",
			Email:        "DFulfagar@gmail.com",
			Phone:        "+91 7888 009987",
			Location:     "Pune, Maharashtra, India",
			HeroImage:    `..\assets\images\heroImage.jpg`,
			ProfileImage: `..\assets\images\profileImage.jpg`,
			About: entity.About{
				Headline:    "Bridging Business Vision with Technical Excellence",
				Description: "With over 16 years of experience in software development and technical leadership, I specialize in architecting enterprise-grade solutions that drive business transformation. My expertise spans from Salesforce CRM ecosystems to full-stack development, with a proven track record of delivering scalable solutions across telecom, banking, and wealth management industries.",
				Highlights: []string{
					"16+ years of hands-on software development and technical leadership",
					"Certified Salesforce Administrator and Platform Developer",
					"Expert in enterprise architecture and microservices design",
					"Led cross-functional teams across multiple continents",
					"Delivered solutions for Fortune 500 companies",
					"Specialized in CRM integrations and automation",
				},
				Philosophy: "I believe in building solutions that not only meet technical requirements but also enhance user experience and drive business growth. Every line of code should serve a purpose, every architecture should scale, and every solution should empower people to work smarter.",
			},
		},
		Experiences: []entity.Experience{
			{
				Period:      "May 2019 - Present",
				Company:     "KIYA.AI (Infrasoft Technologies Limited)",
				Role:        "Senior Principal Consultant",
				Location:    "Remote/Hybrid",
				Type:        "leadership",
				Description: "Leading end-to-end Salesforce CRM development and enterprise solution architecture for wealth management organizations across multiple regions.",
				Achievements: []string{
					"Architected and delivered Siebel CRM IP17 solution for Investment Banking clients in Jersey (UK)",
					"Led implementation of custom REST-based integration applications for Java Business Services",
					"Designed enterprise architecture with microservices, handling millions of business documents",
					"Successfully migrated legacy systems to modern cloud-based solutions on Microsoft Azure",
					"Managed multiple POCs across Salesforce, Microsoft Azure, and API Management platforms",
					"Implemented DevOps practices with Jenkins, reducing deployment time by 60%",
				},
				Technologies: []string{"Salesforce CRM", "Siebel CRM", "Microsoft Azure", "Java", "REST APIs", "Jenkins", "Power BI", "SSIS/SSRS"},
				Order:        1,
			},
			{
				Period:      "Jan 2018 - May 2019",
				Company:     "Synechron Technologies LLC",
				Role:        "Lead Technology",
				Location:    "Dubai, UAE",
				Type:        "technical",
				Description: "Spearheaded development of secure Siebel CRM solutions for Core Banking clients, focusing on agile methodologies and high-performance integrations.",
				Achievements: []string{
					"Developed two secured Siebel IP15 & IP17 CRM solutions for Core Banking in Dubai (UAE)",
					"Built highly scalable CRM solutions using island principles and microservices architecture",
					"Integrated WhatsApp, SalesARM CRM, MeMobile and Finacle for seamless customer experience",
					"Implemented advanced security protocols for banking-grade applications",
					"Led agile development teams across multiple time zones",
				},
				Technologies: []string{"Siebel CRM", "Core Banking Systems", "WhatsApp API", "Microservices", "Security Protocols"},
				Order:        2,
			},
			{
				Period:      "Feb 2015 - Jan 2018",
				Company:     "TCognition Consultancy Pvt. Ltd.",
				Role:        "Technical Lead",
				Location:    "United States (Remote)",
				Type:        "consulting",
				Description: "Delivered comprehensive Siebel CRM integration solutions and telematics applications for major automotive manufacturers across the US market.",
				Achievements: []string{
					"Developed Siebel CRM integration solutions for SiriusXM, serving 14+ million subscribers",
					"Created end-to-end telematics solutions for Honda, Hyundai, Toyota, BMW, Mercedes, and Lexus",
					"Implemented safety, security, and convenience services for connected vehicle ecosystem",
					"Designed integration solutions for Web Services, REST APIs, and JMS Queues",
					"Achieved 99.9% uptime for critical automotive telematics services",
				},
				Technologies: []string{"Siebel CRM", "Telematics", "REST APIs", "Web Services", "JMS", "Automotive Systems"},
				Order:        3,
			},
			{
				Period:      "Jan 2012 - Jan 2015",
				Company:     "Persistent Systems Ltd.",
				Role:        "Senior Software Engineer",
				Location:    "Multiple Locations",
				Type:        "development",
				Description: "Developed innovative Siebel CRM solutions with advanced integrations, including international project collaboration in Brussels.",
				Achievements: []string{
					"Built high-interactivity Siebel CRM application for Bridgestone Tyres Europe business",
					"Developed SAP BAPI integration solutions for seamless enterprise connectivity",
					"Created mobile application solutions for emerging technology platforms",
					"Contributed to university research projects including Metro Ticket Generation System",
					"Worked internationally in Brussels for critical integration projects",
				},
				Technologies: []string{"Siebel CRM", "SAP BAPI", "Mobile Development", "Android", "HTML5", "Enterprise Integration"},
				Order:        4,
			},
			{
				Period:      "Dec 2009 - Jan 2012",
				Company:     "Tech Mahindra Ltd.",
				Role:        "Technical Associate",
				Location:    "India",
				Type:        "foundation",
				Description: "Built foundation expertise in large-scale Telecom CRM systems, supporting millions of subscribers with robust postpaid solutions.",
				Achievements: []string{
					"Contributed to IBM IDEA Project supporting 14+ million current subscribers",
					"Developed postpaid Siebel CRM solutions from ground-up",
					"Gained expertise in billing, revenue assurance, and credit collection systems",
					"Implemented business intelligence and fraud management solutions",
					"Mastered customer relationship management and e-billing systems",
				},
				Technologies: []string{"Siebel CRM", "IBM Systems", "Telecom Billing", "Revenue Assurance", "Business Intelligence"},
				Order:        5,
			},
		},
		Skills: entity.Skills{
			Technical: map[string][]string{
				"CRM Platforms":          {"Salesforce CRM", "Siebel CRM", "Oracle CRM", "Microsoft Dynamics"},
				"Enterprise Integration": {"REST APIs", "SOAP Web Services", "SAP BAPI", "JMS Queues", "MuleSoft"},
				"Cloud Platforms":        {"Microsoft Azure", "AWS", "Google Cloud Platform"},
				"Programming":            {"Java", "JavaScript", "Python", "C#", ".NET", "Node.js"},
				"Frontend Technologies":  {"React.js", "Angular", "Vue.js", "HTML5", "CSS3", "TypeScript"},
				"Databases":              {"SQL Server", "Oracle", "MongoDB", "PostgreSQL", "MySQL"},
				"DevOps & Tools":         {"Jenkins", "Git", "Docker", "Kubernetes", "Azure DevOps"},
				"Business Intelligence":  {"Power BI", "Tableau", "Alteryx", "SSIS", "SSRS"},
			},
			Leadership: []string{
				"Technical Team Leadership",
				"Enterprise Architecture Design",
				"Project & Program Management",
				"Stakeholder Management",
				"Cross-functional Collaboration",
				"Mentoring & Knowledge Transfer",
				"Client Relationship Management",
				"Agile & DevOps Implementation",
			},
			Certifications: []string{
				"Salesforce Certified Administrator",
				"Salesforce Platform Developer I",
			},
		},
		Achievements: []entity.Achievement{
			{
				Title:       "Valuable Team Player Award",
				Description: "Recognized for exceptional contributions to Persistent Systems Ltd.",
				Year:        "2014",
				Category:    "recognition",
			},
			{
				Title:       "Silver Medal Achievement",
				Description: "Secured silver medal in Spirit of Wipro Run 2017 for 5K Marathon in Pune",
				Year:        "2017",
				Category:    "personal",
			},
			{
				Title:       "Paper Presentation Winner",
				Description: "First place twice in Paper Presentation Contest across multiple college events",
				Year:        "2008-2009",
				Category:    "academic",
			},
			{
				Title:       "Best Coders Finalist",
				Description: "Finalist in Best Coders competition at Saga 2008 (MESCOE Inter College Event)",
				Year:        "2008",
				Category:    "technical",
			},
			{
				Title:       "Cricket & Basketball Champion",
				Description: "Winner in multiple college tournaments demonstrating leadership and teamwork",
				Year:        "2007-2009",
				Category:    "sports",
			},
		},
		Education: entity.Education{
			Degree:     "Bachelor of Engineering (Computer)",
			University: "Pune University",
			Year:       "August 2009",
			Grade:      "First Class with Distinction",
			Highlights: []string{
				"Collaborated with BMC Software for university projects",
				"Gained exposure to BBCA tuner infrastructure software (formerly Marimba)",
				"Specialized in core computer science subjects including algorithms, AI, and software architecture",
			},
			Subjects: []string{
				"Design & Analysis of Algorithms",
				"Operating Systems",
				"Principles of Compiler Design",
				"Artificial Intelligence",
				"Network & Information Security",
				"Software Architecture",
				"Database Management Systems",
				"Theory of Computation",
			},
		},
	}
}
