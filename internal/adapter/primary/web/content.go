package web

import "folio/internal/domain"

type navItem struct {
	Path   string
	Label  string
	Active bool
}

var navLinks = []navItem{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/services", Label: "Services"},
	{Path: "/gallery", Label: "Gallery"},
	{Path: "/blog", Label: "Blog"},
	{Path: "/contact", Label: "Contact"},
}

func navFor(path string) []navItem {
	items := make([]navItem, len(navLinks))
	for i, item := range navLinks {
		item.Active = item.Path == path
		items[i] = item
	}
	return items
}

type feature struct {
	Title string
	Text  string
}

var homeFeatures = []feature{
	{Title: "Feature One", Text: "Experience quality and excellence with our first feature set."},
	{Title: "Feature Two", Text: "Discover innovation and modern solutions tailored for you."},
	{Title: "Feature Three", Text: "Join thousands of satisfied users enjoying our services."},
}

type skillGroup struct {
	Title  string
	Skills []string
}

type experience struct {
	Role     string
	Company  string
	Duration string
	Summary  string
}

type education struct {
	Institution    string
	Degree         string
	Specialization string
	Duration       string
}

type aboutContent struct {
	Summary    []string
	Skills     []skillGroup
	Experience []experience
	Education  []education
}

var about = aboutContent{
	Summary: []string{
		"I am a full-stack developer specializing in Adobe Experience Manager (AEM) and e-commerce solutions, delivering scalable, high-performance digital experiences for enterprise clients.",
		"My passion lies in creating elegant solutions to complex problems, mentoring team members, and continuously learning emerging technologies.",
	},
	Skills: []skillGroup{
		{Title: "Frontend", Skills: []string{"React", "Angular", "Alpine.js", "JavaScript", "SCSS", "HTML", "CSS", "D3.js"}},
		{Title: "Backend", Skills: []string{"C#", ".NET", "Java", "Python", "Web API", "MongoDB", "SQL Server"}},
		{Title: "Tools & Platforms", Skills: []string{"Adobe Experience Manager", "Git", "Azure", "Webpack", "npm", "Jest", "MLflow"}},
		{Title: "Methodologies", Skills: []string{"Agile", "Scrum", "Full Stack Development", "Component-based Architecture"}},
	},
	Experience: []experience{
		{Role: "Technical Consultant", Company: "Adobe", Duration: "Jul 2022 – Present", Summary: "Enterprise-scale AEM and e-commerce development using EDS, React, Alpine.js and SCSS."},
		{Role: "Research & Development Engineer", Company: "ABB", Duration: "Apr 2020 – Jun 2022", Summary: "Full stack development with C#, Angular and MLflow for data ingestion and ML training workflows."},
		{Role: "Software Engineer", Company: "Wipro Limited", Duration: "Jun 2019 – Mar 2020", Summary: "Front-end development with Angular and Python on a cloud email security product."},
		{Role: "Software Engineer", Company: "BizRuntime IT Services", Duration: "Jul 2017 – Jun 2019", Summary: "Full stack development with Angular, C#, .NET MVC and Azure."},
	},
	Education: []education{
		{Institution: "Salem College of Engineering and Technology", Degree: "Bachelor of Engineering", Specialization: "Electronics and Communication Engineering", Duration: "2010 – 2014"},
	},
}

type fieldMeta struct {
	Name        domain.FieldName
	Label       string
	Type        string
	Placeholder string
	Required    bool
}

var contactFields = []fieldMeta{
	{Name: domain.FieldFullName, Label: "Full Name", Type: "text", Placeholder: "John Amendo", Required: true},
	{Name: domain.FieldPhone, Label: "Phone", Type: "tel", Placeholder: "+1 412 520 3231"},
	{Name: domain.FieldEmail, Label: "Email", Type: "email", Placeholder: "john@example.com", Required: true},
	{Name: domain.FieldSubject, Label: "Subject", Type: "text", Placeholder: "Product Demo"},
	{Name: domain.FieldMessage, Label: "Message", Type: "textarea", Placeholder: "Your Message", Required: true},
}
