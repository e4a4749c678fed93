package store

import "crux/pkg/models"

// mockArticles returns the fixed article set served when no upstream
// news API key is configured. Order matters: the feed relies on it.
func mockArticles() []models.Article {
	return []models.Article{
		{
			ID:          "1",
			Title:       "Revolutionary AI Breakthrough in Medical Diagnosis",
			Description: "Scientists develop AI system that can diagnose rare diseases with 95% accuracy",
			Content: "A groundbreaking artificial intelligence system developed by researchers at Stanford University " +
				"has achieved a remarkable 95% accuracy rate in diagnosing rare medical conditions. The system, called MedAI, " +
				"uses advanced machine learning algorithms to analyze patient symptoms, medical history, and diagnostic images " +
				"to provide accurate diagnoses for conditions that often take months or years to identify correctly. " +
				"The research team, led by Dr. Sarah Chen, trained the AI on over 100,000 medical cases spanning 500 rare diseases. " +
				"The system has already been tested in clinical trials across 15 hospitals, showing consistent results that match " +
				"or exceed specialist physicians in diagnostic accuracy. This breakthrough could revolutionize healthcare by " +
				"providing faster, more accurate diagnoses for patients with rare conditions, potentially saving thousands of lives annually.",
			Author:      "Dr. Michael Rodriguez",
			PublishedAt: "2024-01-15T10:30:00Z",
			URLToImage:  "/medical-ai.png",
			URL:         "https://example.com/ai-medical-breakthrough",
			Source:      models.ArticleSource{ID: "medical-news", Name: "Medical News Today"},
		},
		{
			ID:          "2",
			Title:       "Global Climate Summit Reaches Historic Agreement",
			Description: "World leaders commit to ambitious carbon reduction targets",
			Content: "In a historic moment for global climate action, representatives from 195 countries have reached " +
				"a comprehensive agreement at the Global Climate Summit in Geneva. The agreement, dubbed the \"Geneva Accord\", " +
				"establishes binding carbon reduction targets that aim to limit global warming to 1.5°C above pre-industrial levels. " +
				"Key provisions include a commitment to reduce global carbon emissions by 50% by 2030 and achieve net-zero emissions " +
				"by 2050. The accord also establishes a $500 billion climate fund to support developing nations in their transition " +
				"to renewable energy. UN Secretary-General António Guterres called it \"the most significant climate agreement since " +
				"the Paris Accord\", while environmental groups praised the binding nature of the commitments. The agreement will " +
				"require ratification by individual nations, with implementation beginning in 2025.",
			Author:      "Emma Thompson",
			PublishedAt: "2024-01-14T14:20:00Z",
			URLToImage:  "/climate-summit-leaders.png",
			URL:         "https://example.com/climate-summit-agreement",
			Source:      models.ArticleSource{ID: "global-news", Name: "Global News Network"},
		},
		{
			ID:          "3",
			Title:       "Quantum Computing Milestone: 1000-Qubit Processor Unveiled",
			Description: "Tech giant announces breakthrough in quantum computing with unprecedented processing power",
			Content: "TechCorp has unveiled the world's first 1000-qubit quantum processor, marking a significant milestone " +
				"in quantum computing development. The processor, named \"QuantumMax\", represents a 10-fold increase in quantum " +
				"processing power compared to previous systems. The breakthrough was achieved through innovative error correction " +
				"techniques and advanced superconducting qubit design. Initial tests show the processor can solve complex " +
				"optimization problems in minutes that would take classical computers years to complete. The technology has " +
				"immediate applications in drug discovery, financial modeling, and cryptography. Dr. Lisa Wang, TechCorp's Chief " +
				"Quantum Officer, stated that this advancement brings practical quantum computing applications within reach for " +
				"enterprises. The company plans to make the processor available through cloud services starting in Q3 2024, with " +
				"partnerships already established with major pharmaceutical and financial institutions.",
			Author:      "James Liu",
			PublishedAt: "2024-01-13T09:15:00Z",
			URLToImage:  "/quantum-computer-processor-technology.png",
			URL:         "https://example.com/quantum-computing-milestone",
			Source:      models.ArticleSource{ID: "tech-today", Name: "Tech Today"},
		},
	}
}
