package utils

import "coursehub/models"

// SampleCourses is the demo catalog loaded by `coursehub seed` or SEED_ON_START.
func SampleCourses() []models.Course {
	return []models.Course{
		{
			Title:       "Complete React Development Course",
			Description: "Master React from basics to advanced concepts including hooks, context, and modern patterns.",
			Category:    "Web Development",
			Price:       99,
			Duration:    12,
			Instructor:  models.Instructor{Name: "John Doe", Email: "john@example.com"},
			Image:       "https://i.ibb.co.com/SXzrFH67/react-js-inscription-against-laptop-and-code-background-learn-react-programming-language-computer-co.jpg",
			Featured:    true,
		},
		{
			Title:       "Python for Data Science",
			Description: "Learn Python programming for data analysis, visualization, and machine learning.",
			Category:    "Data Science",
			Price:       129,
			Duration:    16,
			Instructor:  models.Instructor{Name: "Jane Smith", Email: "jane@example.com"},
			Image:       "https://i.ibb.co.com/v6qd0KQJ/pythom-data-science.webp",
			Featured:    true,
		},
		{
			Title:       "UI/UX Design Fundamentals",
			Description: "Create beautiful and user-friendly interfaces with modern design principles.",
			Category:    "Design",
			Price:       79,
			Duration:    8,
			Instructor:  models.Instructor{Name: "Mike Johnson", Email: "mike@example.com"},
			Image:       "https://i.ibb.co.com/vvjB7KDW/images-q-tbn-ANd9-Gc-Rhf-OQKOixn45-CBe-Tn-Xq-PDJCDFd-ADC1-Tx-Flfg-s.jpg",
			Featured:    true,
		},
		{
			Title:       "Node.js Backend Development",
			Description: "Build scalable backend applications with Node.js, Express, and MongoDB.",
			Category:    "Backend Development",
			Price:       109,
			Duration:    14,
			Instructor:  models.Instructor{Name: "Sarah Wilson", Email: "sarah@example.com"},
			Image:       "https://i.ibb.co.com/mFrf0J6k/creative-abstract-quantum-illustration-23-2149236239.jpg",
			Featured:    true,
		},
		{
			Title:       "Mobile App Development with React Native",
			Description: "Create cross-platform mobile apps using React Native and modern development tools.",
			Category:    "Mobile Development",
			Price:       149,
			Duration:    18,
			Instructor:  models.Instructor{Name: "Alex Chen", Email: "alex@example.com"},
			Image:       "https://i.ibb.co.com/1Y9T3rpx/images-q-tbn-ANd9-Gc-QFiqh-NPIf-C41v-Arw-UJ6mf-Nw5-EJ-o-TEbvc-O4w-s.jpg",
			Featured:    true,
		},
		{
			Title:       "Digital Marketing Mastery",
			Description: "Master digital marketing strategies including SEO, social media, and content marketing.",
			Category:    "Marketing",
			Price:       89,
			Duration:    10,
			Instructor:  models.Instructor{Name: "Emma Davis", Email: "emma@example.com"},
			Image:       "https://i.ibb.co.com/GB8J3G2/1700542164188-e-2147483647-v-beta-t-VQlw-NSONr-Jj-Y1-QGQFPF80-HZOUV5k-YJc18q-Di8-FIt0i4.png",
			Featured:    true,
		},
	}
}
