package site

import (
	"html/template"
	"slices"
	"time"
)

// Blog categories, in filter order.
var blogCategories = []string{"education", "health", "community", "transparency", "infrastructure", "development"}

// BlogPost is one article. Posts without Content are listed but have no
// page of their own.
type BlogPost struct {
	Slug        string
	Title       string
	Excerpt     string
	Content     template.HTML
	PublishedAt time.Time
	Author      string
	Image       string
	Category    string
}

// Blog is the static article catalog, newest first.
type Blog struct {
	posts []BlogPost
}

func NewBlog(posts ...BlogPost) *Blog {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b BlogPost) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	return &Blog{posts: sorted}
}

// Categories lists the filterable categories.
func (b *Blog) Categories() []string {
	return slices.Clone(blogCategories)
}

// List returns the posts in category, or all of them for "" and unknown
// categories.
func (b *Blog) List(category string) []BlogPost {
	if !slices.Contains(blogCategories, category) {
		return slices.Clone(b.posts)
	}
	out := make([]BlogPost, 0, len(b.posts))
	for _, p := range b.posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Lookup finds a readable post by slug.
func (b *Blog) Lookup(slug string) (BlogPost, bool) {
	for _, p := range b.posts {
		if p.Slug == slug && p.Content != "" {
			return p, true
		}
	}
	return BlogPost{}, false
}

// Related returns up to n other readable posts.
func (b *Blog) Related(slug string, n int) []BlogPost {
	out := make([]BlogPost, 0, n)
	for _, p := range b.posts {
		if len(out) == n {
			break
		}
		if p.Slug != slug && p.Content != "" {
			out = append(out, p)
		}
	}
	return out
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultPosts is the foundation's published blog.
func DefaultPosts() []BlogPost {
	return []BlogPost{
		{
			Slug:        "nueva-escuela-san-miguel",
			Title:       "Nueva escuela en San Miguel: Un sueño hecho realidad",
			Excerpt:     "Después de 8 meses de trabajo, inauguramos la nueva escuela que beneficiará a más de 200 niños en la comunidad de San Miguel.",
			PublishedAt: day("2024-12-15"),
			Author:      "María González",
			Image:       "https://images.pexels.com/photos/8926553/pexels-photo-8926553.jpeg",
			Category:    "education",
			Content: `<p>Después de 8 meses de arduo trabajo, hemos inaugurado oficialmente la nueva escuela en la comunidad de San Miguel. Este proyecto, que beneficiará directamente a más de 200 niños, representa un hito importante en nuestro compromiso con la educación de calidad.</p>
<h2>El proceso de construcción</h2>
<p>La construcción comenzó en abril de 2024 con la participación activa de la comunidad local. Más de 50 voluntarios participaron en las diferentes fases del proyecto, desde la preparación del terreno hasta los acabados finales.</p>
<p>La escuela cuenta con 6 aulas completamente equipadas, una biblioteca, un laboratorio de ciencias básico y un área recreativa.</p>
<h2>Impacto en la comunidad</h2>
<p>La nueva infraestructura educativa permitirá que los niños de San Miguel y comunidades cercanas accedan a educación de calidad sin tener que recorrer largas distancias.</p>
<p>Agradecemos profundamente a todos los donantes, voluntarios y miembros de la comunidad que hicieron posible este sueño.</p>`,
		},
		{
			Slug:        "programa-nutricional-resultados",
			Title:       "Resultados del programa nutricional infantil",
			Excerpt:     "Los resultados de nuestro programa nutricional muestran una mejora significativa en el estado de salud de los niños participantes.",
			PublishedAt: day("2024-12-01"),
			Author:      "Dr. Carlos Rodríguez",
			Image:       "https://images.pexels.com/photos/6646832/pexels-photo-6646832.jpeg",
			Category:    "health",
			Content: `<p>Después de un año de implementación, nuestro programa nutricional infantil ha mostrado resultados que superan nuestras expectativas iniciales.</p>
<h2>Resultados obtenidos</h2>
<p>El seguimiento médico realizado a los 180 niños participantes muestra una mejora promedio del 23% en su estado nutricional y una reducción del 45% en casos de desnutrición aguda.</p>
<h2>Metodología del programa</h2>
<p>El programa combina la distribución de alimentos nutritivos con educación alimentaria para las familias.</p>`,
		},
		{
			Slug:        "voluntarios-construccion-centro-salud",
			Title:       "Voluntarios internacionales se unen a la construcción del centro de salud",
			Excerpt:     "Un grupo de 15 voluntarios de diferentes países llegó para apoyar la construcción de nuestro nuevo centro de salud comunitario.",
			PublishedAt: day("2024-11-20"),
			Author:      "Ana Martínez",
			Image:       "https://images.pexels.com/photos/6975474/pexels-photo-6975474.jpeg",
			Category:    "community",
			Content: `<p>La llegada de 15 voluntarios internacionales marca un momento especial en la construcción de nuestro nuevo centro de salud comunitario.</p>
<h2>Un equipo diverso con un objetivo común</h2>
<p>Entre los voluntarios encontramos arquitectos, ingenieros, médicos y estudiantes universitarios, todos unidos por el deseo de contribuir al desarrollo de comunidades vulnerables.</p>
<h2>Más que construcción</h2>
<p>Además del trabajo físico, los voluntarios están desarrollando talleres de capacitación para el personal local de salud.</p>`,
		},
		{
			Slug:        "informe-transparencia-2024",
			Title:       "Informe de transparencia 2024: Nuestros logros y desafíos",
			Excerpt:     "Publicamos nuestro informe anual de transparencia donde detallamos todos nuestros proyectos, finanzas y el impacto generado.",
			PublishedAt: day("2024-11-10"),
			Author:      "María González",
			Image:       "https://subir-imagen.com/images/2025/09/04/download30275424eb7ff8f1.jpg",
			Category:    "transparency",
		},
		{
			Slug:        "agua-potable-comunidad-rural",
			Title:       "Proyecto de agua potable lleva esperanza a comunidad rural",
			Excerpt:     "La instalación de un nuevo sistema de agua potable beneficia directamente a 450 personas en la comunidad de Valle Verde.",
			PublishedAt: day("2024-10-28"),
			Author:      "Carlos Rodríguez",
			Image:       "https://images.pexels.com/photos/6646860/pexels-photo-6646860.jpeg",
			Category:    "infrastructure",
		},
		{
			Slug:        "capacitacion-mujeres-emprendedoras",
			Title:       "Capacitación para mujeres emprendedoras genera nuevas oportunidades",
			Excerpt:     "Nuestro programa de capacitación empresarial ha ayudado a 30 mujeres a iniciar sus propios negocios locales.",
			PublishedAt: day("2024-10-15"),
			Author:      "Ana Martínez",
			Image:       "https://images.pexels.com/photos/6646848/pexels-photo-6646848.jpeg",
			Category:    "development",
		},
	}
}
